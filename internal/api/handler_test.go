package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/danoh/steptutor/internal/docstore"
	"github.com/danoh/steptutor/internal/llm"
	"github.com/danoh/steptutor/internal/ragchat"
	"github.com/danoh/steptutor/internal/retrieval"
)

// testEnv wires a handler against a throwaway store and blob dir.
type testEnv struct {
	h      *Handler
	router chi.Router
	store  *docstore.Store
	mock   *llm.MockProvider
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := docstore.Open(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	blobs, err := docstore.NewBlobStore(t.TempDir(), "/files")
	if err != nil {
		t.Fatalf("blob store: %v", err)
	}

	embed := retrieval.EmbedderFunc(func(_ context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i := range texts {
			out[i] = []float32{1, 0, 0}
		}
		return out, nil
	})

	ingestor := &retrieval.Ingestor{
		Extractor: retrieval.PlainTextExtractor{},
		Chunker:   retrieval.NewChunker(),
		Embedder:  embed,
		PDFs:      store.PDFs(),
		Chunks:    store.Chunks(),
	}

	mock := llm.NewMockProvider()
	chat := &ragchat.Chat{
		Provider:  mock,
		Retriever: &retrieval.Searcher{Embedder: embed, Chunks: store.Chunks()},
		PDFs:      store.PDFs(),
	}

	h := NewHandler(store, blobs, ingestor, chat, mock, nil)
	return &testEnv{h: h, router: h.Router(), store: store, mock: mock}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(data)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestFolderEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/folders", map[string]string{"name": "수학 자료"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create folder: %d %s", rec.Code, rec.Body.String())
	}
	created := decodeBody[folderResponse](t, rec)

	rec = env.do(t, http.MethodGet, "/api/folders", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list folders: %d", rec.Code)
	}
	list := decodeBody[[]folderResponse](t, rec)
	if len(list) != 1 || list[0].Name != "수학 자료" {
		t.Errorf("list = %+v", list)
	}

	rec = env.do(t, http.MethodPatch, "/api/folders/"+created.ID.String(), map[string]string{"name": "새 이름"})
	if rec.Code != http.StatusOK {
		t.Fatalf("rename: %d %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodDelete, "/api/folders/"+created.ID.String(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: %d", rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/api/folders/"+created.ID.String(), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get deleted folder: %d, want 404", rec.Code)
	}
}

func TestCreateFolderValidation(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/folders", map[string]string{"name": "  "})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("blank name: %d, want 400", rec.Code)
	}
}

func uploadFile(t *testing.T, env *testEnv, folderID uuid.UUID, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/folders/"+folderID.String()+"/pdfs", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func waitForStatus(t *testing.T, env *testEnv, pdfID uuid.UUID, want docstore.RagStatus) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		pdf, err := env.store.PDFs().Get(context.Background(), pdfID)
		if err != nil {
			t.Fatalf("poll pdf: %v", err)
		}
		if pdf != nil && pdf.RagStatus == want {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("pdf %s never reached status %q", pdfID, want)
}

func TestUploadAndIngest(t *testing.T) {
	env := newTestEnv(t)
	folder := decodeBody[folderResponse](t,
		env.do(t, http.MethodPost, "/api/folders", map[string]string{"name": "업로드"}))

	rec := uploadFile(t, env, folder.ID, "notes.txt", strings.Repeat("미분과 적분 요점 정리 ", 100))
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload: %d %s", rec.Code, rec.Body.String())
	}
	pdf := decodeBody[pdfResponse](t, rec)
	if pdf.Filename != "notes.txt" || pdf.URL == "" {
		t.Errorf("pdf = %+v", pdf)
	}

	waitForStatus(t, env, pdf.ID, docstore.RagCompleted)

	chunks, err := env.store.Chunks().ListByPDFs(context.Background(), []uuid.UUID{pdf.ID})
	if err != nil {
		t.Fatalf("list chunks: %v", err)
	}
	if len(chunks) == 0 {
		t.Error("no chunks after ingest")
	}

	// Same content again dedupes to the existing record.
	rec = uploadFile(t, env, folder.ID, "notes.txt", strings.Repeat("미분과 적분 요점 정리 ", 100))
	if rec.Code != http.StatusOK {
		t.Fatalf("duplicate upload: %d", rec.Code)
	}
	dup := decodeBody[pdfResponse](t, rec)
	if dup.ID != pdf.ID {
		t.Errorf("duplicate created new record %s", dup.ID)
	}
}

func TestUploadToMissingFolder(t *testing.T) {
	env := newTestEnv(t)
	rec := uploadFile(t, env, uuid.New(), "x.txt", "내용")
	if rec.Code != http.StatusNotFound {
		t.Errorf("upload to missing folder: %d, want 404", rec.Code)
	}
}

func TestChatEndpoint(t *testing.T) {
	env := newTestEnv(t)
	folder := decodeBody[folderResponse](t,
		env.do(t, http.MethodPost, "/api/folders", map[string]string{"name": "채팅"}))

	rec := uploadFile(t, env, folder.ID, "doc.txt", "미분의 정의는 순간 변화율이다.")
	pdf := decodeBody[pdfResponse](t, rec)
	waitForStatus(t, env, pdf.ID, docstore.RagCompleted)

	env.mock.AddResponse(llm.MockResponse{Content: json.RawMessage("미분은 순간 변화율입니다.")})

	rec = env.do(t, http.MethodPost, "/api/folders/"+folder.ID.String()+"/chat", map[string]any{
		"messages": []map[string]string{{"role": "user", "content": "미분이 뭐야?"}},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("chat: %d %s", rec.Code, rec.Body.String())
	}
	ans := decodeBody[ragchat.Answer](t, rec)
	if ans.Message != "미분은 순간 변화율입니다." {
		t.Errorf("message = %q", ans.Message)
	}
	if len(ans.Sources) != 1 {
		t.Errorf("sources = %+v, want 1", ans.Sources)
	}
}

func TestChatValidation(t *testing.T) {
	env := newTestEnv(t)
	folder := decodeBody[folderResponse](t,
		env.do(t, http.MethodPost, "/api/folders", map[string]string{"name": "검증"}))

	rec := env.do(t, http.MethodPost, "/api/folders/"+folder.ID.String()+"/chat", map[string]any{
		"messages": []map[string]string{},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty messages: %d, want 400", rec.Code)
	}

	rec = env.do(t, http.MethodPost, "/api/folders/"+folder.ID.String()+"/chat", map[string]any{
		"messages": []map[string]string{{"role": "system", "content": "탈취 시도"}},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("system role: %d, want 400", rec.Code)
	}
}

func seedQuestion(t *testing.T, env *testEnv) questionResponse {
	t.Helper()
	ch := decodeBody[map[string]any](t,
		env.do(t, http.MethodPost, "/api/chapters", map[string]any{"name": "다항식", "position": 1}))
	chID := fmt.Sprint(ch["ID"])
	sec := decodeBody[map[string]any](t,
		env.do(t, http.MethodPost, "/api/chapters/"+chID+"/sections", map[string]any{"name": "연산", "position": 1}))
	secID := fmt.Sprint(sec["ID"])

	rec := env.do(t, http.MethodPost, "/api/sections/"+secID+"/questions", map[string]any{
		"questionText": "$2x+3=7$일 때 $x$는?",
		"type":         "short_answer",
		"answer":       "2",
		"explanation":  "양변에서 3을 빼고 2로 나눈다.",
		"position":     1,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create question: %d %s", rec.Code, rec.Body.String())
	}
	return decodeBody[questionResponse](t, rec)
}

func TestTutorSessionFlow(t *testing.T) {
	env := newTestEnv(t)
	q := seedQuestion(t, env)

	stepOne := `{"type":"step","step":1,"totalSteps":2,"question":"먼저 무엇을 할까요?","options":["양변에서 3을 뺀다","바로 나눈다","이 단계 건너뛰기"],"correctIndex":0}`
	env.mock.AddResponse(llm.MockResponse{Content: json.RawMessage(stepOne)})

	rec := env.do(t, http.MethodPost, "/api/tutor/sessions", map[string]any{"questionId": q.ID})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session: %d %s", rec.Code, rec.Body.String())
	}
	sess := decodeBody[sessionResponse](t, rec)
	if sess.CurrentStep == nil || sess.CurrentStep.Step != 1 {
		t.Fatalf("currentStep = %+v", sess.CurrentStep)
	}
	if len(sess.CurrentStep.Options) != 3 {
		t.Errorf("options = %v", sess.CurrentStep.Options)
	}

	env.mock.AddResponse(llm.MockResponse{Content: json.RawMessage(
		`{"type":"text","content":"정답입니다!"} {"type":"complete","content":"풀이 완료!"}`)})

	rec = env.do(t, http.MethodPost, "/api/tutor/sessions/"+sess.SessionID.String()+"/option",
		map[string]any{"option": "양변에서 3을 뺀다", "index": 0})
	if rec.Code != http.StatusOK {
		t.Fatalf("select option: %d %s", rec.Code, rec.Body.String())
	}
	after := decodeBody[sessionResponse](t, rec)
	if !after.Completed {
		t.Errorf("session not completed: %+v", after)
	}

	rec = env.do(t, http.MethodGet, "/api/tutor/sessions/"+sess.SessionID.String(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get session: %d", rec.Code)
	}

	rec = env.do(t, http.MethodDelete, "/api/tutor/sessions/"+sess.SessionID.String(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete session: %d", rec.Code)
	}
	rec = env.do(t, http.MethodGet, "/api/tutor/sessions/"+sess.SessionID.String(), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get removed session: %d, want 404", rec.Code)
	}
}

func TestTutorSessionMissingQuestion(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/tutor/sessions", map[string]any{"questionId": uuid.New()})
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing question: %d, want 404", rec.Code)
	}
}
