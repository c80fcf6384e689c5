package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/danoh/steptutor/internal/docstore"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show library statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := docstore.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()

		folders, err := st.Folders().List(ctx)
		if err != nil {
			return fmt.Errorf("list folders: %w", err)
		}

		fmt.Println("Folders")
		fmt.Println(strings.Repeat("─", 64))
		var totalPDFs, totalChunks int
		for _, f := range folders {
			pdfs, err := st.PDFs().ListByFolder(ctx, f.ID)
			if err != nil {
				return fmt.Errorf("list pdfs of %q: %w", f.Name, err)
			}
			ids := make([]uuid.UUID, 0, len(pdfs))
			byStatus := map[docstore.RagStatus]int{}
			for _, p := range pdfs {
				ids = append(ids, p.ID)
				byStatus[p.RagStatus]++
			}
			chunks, err := st.Chunks().ListByPDFs(ctx, ids)
			if err != nil {
				return fmt.Errorf("list chunks of %q: %w", f.Name, err)
			}
			fmt.Printf("%-28s  %3d docs (%d ready)  %5d chunks\n",
				truncate(f.Name, 28), len(pdfs), byStatus[docstore.RagCompleted], len(chunks))
			totalPDFs += len(pdfs)
			totalChunks += len(chunks)
		}
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-28s  %3d docs  %5d chunks\n", "TOTAL", totalPDFs, totalChunks)

		chapters, err := st.Questions().ListChapters(ctx)
		if err != nil {
			return fmt.Errorf("list chapters: %w", err)
		}
		var totalSections, totalQuestions int
		for _, ch := range chapters {
			sections, err := st.Questions().ListSections(ctx, ch.ID)
			if err != nil {
				return fmt.Errorf("list sections: %w", err)
			}
			totalSections += len(sections)
			for _, sec := range sections {
				qs, err := st.Questions().ListQuestions(ctx, sec.ID)
				if err != nil {
					return fmt.Errorf("list questions: %w", err)
				}
				totalQuestions += len(qs)
			}
		}

		fmt.Println()
		fmt.Printf("Question bank: %d chapters, %d sections, %d questions\n",
			len(chapters), totalSections, totalQuestions)
		return nil
	},
}
