package api

import (
	"net/http"

	"github.com/danoh/steptutor/internal/llm"
)

// chatWithFolder answers a question about the folder's documents.
func (h *Handler) chatWithFolder(w http.ResponseWriter, r *http.Request) {
	folderID, ok := pathUUID(r, "folderID")
	if !ok {
		Error(w, http.StatusBadRequest, "invalid folder id")
		return
	}

	var req struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		UseGeneralKnowledge bool `json:"useGeneralKnowledge"`
	}
	if err := decode(r, &req); err != nil || len(req.Messages) == 0 {
		Error(w, http.StatusBadRequest, "messages are required")
		return
	}

	messages := make([]llm.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := llm.Role(m.Role)
		switch role {
		case llm.RoleUser, llm.RoleAssistant:
		default:
			Error(w, http.StatusBadRequest, "message roles must be user or assistant")
			return
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Content})
	}

	answer, err := h.chat.Ask(r.Context(), folderID, messages, req.UseGeneralKnowledge)
	if err != nil {
		h.log.Error("folder chat", "folder_id", folderID, "error", err)
		Error(w, http.StatusInternalServerError, "failed to answer question")
		return
	}
	JSON(w, http.StatusOK, answer)
}
