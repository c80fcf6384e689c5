// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/danoh/steptutor/ent/chapter"
	"github.com/danoh/steptutor/ent/folder"
	"github.com/danoh/steptutor/ent/llmevent"
	"github.com/danoh/steptutor/ent/pdf"
	"github.com/danoh/steptutor/ent/question"
	"github.com/danoh/steptutor/ent/schema"
	"github.com/danoh/steptutor/ent/section"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chapterFields := schema.Chapter{}.Fields()
	_ = chapterFields
	// chapterDescName is the schema descriptor for name field.
	chapterDescName := chapterFields[1].Descriptor()
	// chapter.NameValidator is a validator for the "name" field. It is called by the builders before save.
	chapter.NameValidator = chapterDescName.Validators[0].(func(string) error)
	// chapterDescPosition is the schema descriptor for position field.
	chapterDescPosition := chapterFields[2].Descriptor()
	// chapter.DefaultPosition holds the default value on creation for the position field.
	chapter.DefaultPosition = chapterDescPosition.Default.(int)
	// chapterDescID is the schema descriptor for id field.
	chapterDescID := chapterFields[0].Descriptor()
	// chapter.DefaultID holds the default value on creation for the id field.
	chapter.DefaultID = chapterDescID.Default.(func() uuid.UUID)
	folderFields := schema.Folder{}.Fields()
	_ = folderFields
	// folderDescName is the schema descriptor for name field.
	folderDescName := folderFields[1].Descriptor()
	// folder.NameValidator is a validator for the "name" field. It is called by the builders before save.
	folder.NameValidator = folderDescName.Validators[0].(func(string) error)
	// folderDescCreatedAt is the schema descriptor for created_at field.
	folderDescCreatedAt := folderFields[2].Descriptor()
	// folder.DefaultCreatedAt holds the default value on creation for the created_at field.
	folder.DefaultCreatedAt = folderDescCreatedAt.Default.(func() time.Time)
	// folderDescID is the schema descriptor for id field.
	folderDescID := folderFields[0].Descriptor()
	// folder.DefaultID holds the default value on creation for the id field.
	folder.DefaultID = folderDescID.Default.(func() uuid.UUID)
	llmeventFields := schema.LLMEvent{}.Fields()
	_ = llmeventFields
	// llmeventDescTimestamp is the schema descriptor for timestamp field.
	llmeventDescTimestamp := llmeventFields[0].Descriptor()
	// llmevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmevent.DefaultTimestamp = llmeventDescTimestamp.Default.(func() time.Time)
	// llmeventDescInputTokens is the schema descriptor for input_tokens field.
	llmeventDescInputTokens := llmeventFields[4].Descriptor()
	// llmevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmevent.DefaultInputTokens = llmeventDescInputTokens.Default.(int)
	// llmeventDescOutputTokens is the schema descriptor for output_tokens field.
	llmeventDescOutputTokens := llmeventFields[5].Descriptor()
	// llmevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmevent.DefaultOutputTokens = llmeventDescOutputTokens.Default.(int)
	// llmeventDescLatencyMs is the schema descriptor for latency_ms field.
	llmeventDescLatencyMs := llmeventFields[6].Descriptor()
	// llmevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmevent.DefaultLatencyMs = llmeventDescLatencyMs.Default.(int64)
	// llmeventDescErrorMessage is the schema descriptor for error_message field.
	llmeventDescErrorMessage := llmeventFields[8].Descriptor()
	// llmevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmevent.DefaultErrorMessage = llmeventDescErrorMessage.Default.(string)
	// llmeventDescRequestBody is the schema descriptor for request_body field.
	llmeventDescRequestBody := llmeventFields[9].Descriptor()
	// llmevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmevent.DefaultRequestBody = llmeventDescRequestBody.Default.(string)
	// llmeventDescResponseBody is the schema descriptor for response_body field.
	llmeventDescResponseBody := llmeventFields[10].Descriptor()
	// llmevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmevent.DefaultResponseBody = llmeventDescResponseBody.Default.(string)
	pdfFields := schema.PDF{}.Fields()
	_ = pdfFields
	// pdfDescFilename is the schema descriptor for filename field.
	pdfDescFilename := pdfFields[1].Descriptor()
	// pdf.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	pdf.FilenameValidator = pdfDescFilename.Validators[0].(func(string) error)
	// pdfDescSizeBytes is the schema descriptor for size_bytes field.
	pdfDescSizeBytes := pdfFields[4].Descriptor()
	// pdf.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	pdf.DefaultSizeBytes = pdfDescSizeBytes.Default.(int64)
	// pdfDescCreatedAt is the schema descriptor for created_at field.
	pdfDescCreatedAt := pdfFields[6].Descriptor()
	// pdf.DefaultCreatedAt holds the default value on creation for the created_at field.
	pdf.DefaultCreatedAt = pdfDescCreatedAt.Default.(func() time.Time)
	// pdfDescID is the schema descriptor for id field.
	pdfDescID := pdfFields[0].Descriptor()
	// pdf.DefaultID holds the default value on creation for the id field.
	pdf.DefaultID = pdfDescID.Default.(func() uuid.UUID)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQuestionText is the schema descriptor for question_text field.
	questionDescQuestionText := questionFields[1].Descriptor()
	// question.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	question.QuestionTextValidator = questionDescQuestionText.Validators[0].(func(string) error)
	// questionDescAnswer is the schema descriptor for answer field.
	questionDescAnswer := questionFields[4].Descriptor()
	// question.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	question.AnswerValidator = questionDescAnswer.Validators[0].(func(string) error)
	// questionDescPosition is the schema descriptor for position field.
	questionDescPosition := questionFields[6].Descriptor()
	// question.DefaultPosition holds the default value on creation for the position field.
	question.DefaultPosition = questionDescPosition.Default.(int)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[7].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.DefaultID holds the default value on creation for the id field.
	question.DefaultID = questionDescID.Default.(func() uuid.UUID)
	sectionFields := schema.Section{}.Fields()
	_ = sectionFields
	// sectionDescName is the schema descriptor for name field.
	sectionDescName := sectionFields[1].Descriptor()
	// section.NameValidator is a validator for the "name" field. It is called by the builders before save.
	section.NameValidator = sectionDescName.Validators[0].(func(string) error)
	// sectionDescPosition is the schema descriptor for position field.
	sectionDescPosition := sectionFields[2].Descriptor()
	// section.DefaultPosition holds the default value on creation for the position field.
	section.DefaultPosition = sectionDescPosition.Default.(int)
	// sectionDescID is the schema descriptor for id field.
	sectionDescID := sectionFields[0].Descriptor()
	// section.DefaultID holds the default value on creation for the id field.
	section.DefaultID = sectionDescID.Default.(func() uuid.UUID)
}
