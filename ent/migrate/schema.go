// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "time_taken", Type: field.TypeInt},
		{Name: "score", Type: field.TypeInt},
		{Name: "grade", Type: field.TypeEnum, Enums: []string{"fail", "pass", "good", "master"}},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"train", "test"}, Default: "test"},
		{Name: "student_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attempts_profiles_attempts",
				Columns:    []*schema.Column{AttemptsColumns[8]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "attempts_tasks_attempts",
				Columns:    []*schema.Column{AttemptsColumns[9]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_student_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[8], AttemptsColumns[2]},
			},
			{
				Name:    "attempt_task_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[9]},
			},
		},
	}
	// AttemptAnswersColumns holds the columns for the "attempt_answers" table.
	AttemptAnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_index", Type: field.TypeInt},
		{Name: "user_answer", Type: field.TypeInt, Nullable: true},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "attempt_id", Type: field.TypeString},
	}
	// AttemptAnswersTable holds the schema information for the "attempt_answers" table.
	AttemptAnswersTable = &schema.Table{
		Name:       "attempt_answers",
		Columns:    AttemptAnswersColumns,
		PrimaryKey: []*schema.Column{AttemptAnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attempt_answers_attempts_answers",
				Columns:    []*schema.Column{AttemptAnswersColumns[4]},
				RefColumns: []*schema.Column{AttemptsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attemptanswer_attempt_id_question_index",
				Unique:  true,
				Columns: []*schema.Column{AttemptAnswersColumns[4], AttemptAnswersColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"COACH", "STUDENT"}},
		{Name: "coach_id", Type: field.TypeString, Nullable: true},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "profiles_profiles_students",
				Columns:    []*schema.Column{ProfilesColumns[4]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "profile_role",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[3]},
			},
			{
				Name:    "profile_coach_id",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[4]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString},
		{Name: "task_type", Type: field.TypeString, Default: "multiplication"},
		{Name: "time_limit", Type: field.TypeInt},
		{Name: "pass_score", Type: field.TypeInt},
		{Name: "good_score", Type: field.TypeInt},
		{Name: "master_score", Type: field.TypeInt},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "config", Type: field.TypeJSON},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "creator_id", Type: field.TypeString},
		{Name: "assigned_to_id", Type: field.TypeString, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_profiles_created_tasks",
				Columns:    []*schema.Column{TasksColumns[11]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "tasks_profiles_assigned_tasks",
				Columns:    []*schema.Column{TasksColumns[12]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_creator_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[11]},
			},
			{
				Name:    "task_assigned_to_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[12]},
			},
			{
				Name:    "task_is_active",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		AttemptAnswersTable,
		LlmRequestEventsTable,
		ProfilesTable,
		TasksTable,
	}
)

func init() {
	AttemptsTable.ForeignKeys[0].RefTable = ProfilesTable
	AttemptsTable.ForeignKeys[1].RefTable = TasksTable
	AttemptAnswersTable.ForeignKeys[0].RefTable = AttemptsTable
	ProfilesTable.ForeignKeys[0].RefTable = ProfilesTable
	TasksTable.ForeignKeys[0].RefTable = ProfilesTable
	TasksTable.ForeignKeys[1].RefTable = ProfilesTable
}
