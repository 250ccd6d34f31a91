// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mathcoach/ent/attempt"
	"github.com/abhisek/mathcoach/ent/attemptanswer"
	"github.com/abhisek/mathcoach/ent/llmrequestevent"
	"github.com/abhisek/mathcoach/ent/profile"
	"github.com/abhisek/mathcoach/ent/schema"
	"github.com/abhisek/mathcoach/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptMixin := schema.Attempt{}.Mixin()
	attemptMixinFields0 := attemptMixin[0].Fields()
	_ = attemptMixinFields0
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescCreatedAt is the schema descriptor for created_at field.
	attemptDescCreatedAt := attemptMixinFields0[1].Descriptor()
	// attempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	attempt.DefaultCreatedAt = attemptDescCreatedAt.Default.(func() time.Time)
	// attemptDescTimeTaken is the schema descriptor for time_taken field.
	attemptDescTimeTaken := attemptFields[4].Descriptor()
	// attempt.TimeTakenValidator is a validator for the "time_taken" field. It is called by the builders before save.
	attempt.TimeTakenValidator = attemptDescTimeTaken.Validators[0].(func(int) error)
	// attemptDescScore is the schema descriptor for score field.
	attemptDescScore := attemptFields[5].Descriptor()
	// attempt.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	attempt.ScoreValidator = attemptDescScore.Validators[0].(func(int) error)
	// attemptDescID is the schema descriptor for id field.
	attemptDescID := attemptMixinFields0[0].Descriptor()
	// attempt.DefaultID holds the default value on creation for the id field.
	attempt.DefaultID = attemptDescID.Default.(func() string)
	// attempt.IDValidator is a validator for the "id" field. It is called by the builders before save.
	attempt.IDValidator = attemptDescID.Validators[0].(func(string) error)
	attemptanswerFields := schema.AttemptAnswer{}.Fields()
	_ = attemptanswerFields
	// attemptanswerDescQuestionIndex is the schema descriptor for question_index field.
	attemptanswerDescQuestionIndex := attemptanswerFields[1].Descriptor()
	// attemptanswer.QuestionIndexValidator is a validator for the "question_index" field. It is called by the builders before save.
	attemptanswer.QuestionIndexValidator = attemptanswerDescQuestionIndex.Validators[0].(func(int) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	profileMixin := schema.Profile{}.Mixin()
	profileMixinFields0 := profileMixin[0].Fields()
	_ = profileMixinFields0
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileMixinFields0[1].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[0].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileMixinFields0[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() string)
	// profile.IDValidator is a validator for the "id" field. It is called by the builders before save.
	profile.IDValidator = profileDescID.Validators[0].(func(string) error)
	taskMixin := schema.Task{}.Mixin()
	taskMixinFields0 := taskMixin[0].Fields()
	_ = taskMixinFields0
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskMixinFields0[1].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[0].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = taskDescTitle.Validators[0].(func(string) error)
	// taskDescTaskType is the schema descriptor for task_type field.
	taskDescTaskType := taskFields[1].Descriptor()
	// task.DefaultTaskType holds the default value on creation for the task_type field.
	task.DefaultTaskType = taskDescTaskType.Default.(string)
	// taskDescTimeLimit is the schema descriptor for time_limit field.
	taskDescTimeLimit := taskFields[4].Descriptor()
	// task.TimeLimitValidator is a validator for the "time_limit" field. It is called by the builders before save.
	task.TimeLimitValidator = taskDescTimeLimit.Validators[0].(func(int) error)
	// taskDescPassScore is the schema descriptor for pass_score field.
	taskDescPassScore := taskFields[5].Descriptor()
	// task.PassScoreValidator is a validator for the "pass_score" field. It is called by the builders before save.
	task.PassScoreValidator = taskDescPassScore.Validators[0].(func(int) error)
	// taskDescGoodScore is the schema descriptor for good_score field.
	taskDescGoodScore := taskFields[6].Descriptor()
	// task.GoodScoreValidator is a validator for the "good_score" field. It is called by the builders before save.
	task.GoodScoreValidator = taskDescGoodScore.Validators[0].(func(int) error)
	// taskDescMasterScore is the schema descriptor for master_score field.
	taskDescMasterScore := taskFields[7].Descriptor()
	// task.MasterScoreValidator is a validator for the "master_score" field. It is called by the builders before save.
	task.MasterScoreValidator = taskDescMasterScore.Validators[0].(func(int) error)
	// taskDescIsActive is the schema descriptor for is_active field.
	taskDescIsActive := taskFields[10].Descriptor()
	// task.DefaultIsActive holds the default value on creation for the is_active field.
	task.DefaultIsActive = taskDescIsActive.Default.(bool)
	// taskDescID is the schema descriptor for id field.
	taskDescID := taskMixinFields0[0].Descriptor()
	// task.DefaultID holds the default value on creation for the id field.
	task.DefaultID = taskDescID.Default.(func() string)
	// task.IDValidator is a validator for the "id" field. It is called by the builders before save.
	task.IDValidator = taskDescID.Validators[0].(func(string) error)
}
