package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danoh/steptutor/internal/docstore"
)

// questionBank is the on-disk YAML layout for `steptutor import`.
type questionBank struct {
	Chapters []bankChapter `yaml:"chapters"`
}

type bankChapter struct {
	Name     string        `yaml:"name"`
	Position int           `yaml:"position"`
	Sections []bankSection `yaml:"sections"`
}

type bankSection struct {
	Name      string         `yaml:"name"`
	Position  int            `yaml:"position"`
	Questions []bankQuestion `yaml:"questions"`
}

type bankQuestion struct {
	Text        string   `yaml:"text"`
	Type        string   `yaml:"type"`
	Choices     []string `yaml:"choices"`
	Answer      string   `yaml:"answer"`
	Explanation string   `yaml:"explanation"`
	Position    int      `yaml:"position"`
}

var importCmd = &cobra.Command{
	Use:   "import <glob>...",
	Short: "Import question banks from YAML files",
	Long:  "Import reads YAML question bank files matching the given glob patterns (** is supported) and inserts their chapters, sections, and questions.",
	Args:  cobra.MinimumNArgs(1),
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

		var paths []string
		for _, pattern := range args {
			matches, err := doublestar.FilepathGlob(pattern)
			if err != nil {
				return fmt.Errorf("bad pattern %q: %w", pattern, err)
			}
			paths = append(paths, matches...)
		}
		if len(paths) == 0 {
			return fmt.Errorf("no files match the given patterns")
		}

		ctx := cmd.Context()
		var total int
		for _, path := range paths {
			n, err := importBank(ctx, st.Questions(), path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Printf("%s: %d questions\n", path, n)
			total += n
		}
		fmt.Printf("Imported %d questions from %d files.\n", total, len(paths))
		return nil
	},
}

func importBank(ctx context.Context, repo docstore.QuestionRepo, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var bank questionBank
	if err := decodeBankStrict(data, &bank); err != nil {
		return 0, err
	}

	// Existing chapters and sections are matched by name so re-running
	// an import does not duplicate the hierarchy.
	existing, err := repo.ListChapters(ctx)
	if err != nil {
		return 0, fmt.Errorf("list chapters: %w", err)
	}
	chapterByName := make(map[string]*docstore.Chapter, len(existing))
	for _, ch := range existing {
		chapterByName[ch.Name] = ch
	}

	var imported int
	for _, bc := range bank.Chapters {
		if bc.Name == "" {
			return imported, fmt.Errorf("chapter with empty name")
		}
		ch := chapterByName[bc.Name]
		if ch == nil {
			ch, err = repo.CreateChapter(ctx, bc.Name, bc.Position)
			if err != nil {
				return imported, fmt.Errorf("create chapter %q: %w", bc.Name, err)
			}
			chapterByName[bc.Name] = ch
		}

		sections, err := repo.ListSections(ctx, ch.ID)
		if err != nil {
			return imported, fmt.Errorf("list sections of %q: %w", bc.Name, err)
		}
		sectionByName := make(map[string]*docstore.Section, len(sections))
		for _, s := range sections {
			sectionByName[s.Name] = s
		}

		for _, bs := range bc.Sections {
			if bs.Name == "" {
				return imported, fmt.Errorf("chapter %q: section with empty name", bc.Name)
			}
			sec := sectionByName[bs.Name]
			if sec == nil {
				sec, err = repo.CreateSection(ctx, ch.ID, bs.Name, bs.Position)
				if err != nil {
					return imported, fmt.Errorf("create section %q: %w", bs.Name, err)
				}
				sectionByName[bs.Name] = sec
			}

			for i, bq := range bs.Questions {
				q, err := bankToQuestion(sec.ID, bq, i+1)
				if err != nil {
					return imported, fmt.Errorf("section %q question %d: %w", bs.Name, i+1, err)
				}
				if _, err := repo.CreateQuestion(ctx, q); err != nil {
					return imported, fmt.Errorf("create question in %q: %w", bs.Name, err)
				}
				imported++
			}
		}
	}
	return imported, nil
}

func bankToQuestion(sectionID uuid.UUID, bq bankQuestion, fallbackPos int) (*docstore.Question, error) {
	qt := docstore.QuestionType(bq.Type)
	switch qt {
	case docstore.QuestionMultipleChoice:
		if len(bq.Choices) < 2 {
			return nil, fmt.Errorf("multiple_choice needs at least 2 choices")
		}
	case docstore.QuestionShortAnswer:
	default:
		return nil, fmt.Errorf("unknown question type %q", bq.Type)
	}
	if bq.Text == "" {
		return nil, fmt.Errorf("empty question text")
	}
	if bq.Answer == "" {
		return nil, fmt.Errorf("empty answer")
	}

	pos := bq.Position
	if pos == 0 {
		pos = fallbackPos
	}
	return &docstore.Question{
		SectionID:   sectionID,
		Text:        bq.Text,
		Type:        qt,
		Choices:     bq.Choices,
		Answer:      bq.Answer,
		Explanation: bq.Explanation,
		Position:    pos,
	}, nil
}

// decodeBankStrict rejects unknown fields and trailing documents.
func decodeBankStrict(b []byte, bank *questionBank) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(bank); err != nil {
		return err
	}
	var trailing any
	if err := dec.Decode(&trailing); err != io.EOF {
		if err == nil {
			return fmt.Errorf("yaml: multiple documents are not allowed")
		}
		return err
	}
	return nil
}
