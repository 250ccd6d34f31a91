// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the attempt type in the database.
	Label = "attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldTimeTaken holds the string denoting the time_taken field in the database.
	FieldTimeTaken = "time_taken"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// EdgeStudent holds the string denoting the student edge name in mutations.
	EdgeStudent = "student"
	// EdgeAnswers holds the string denoting the answers edge name in mutations.
	EdgeAnswers = "answers"
	// Table holds the table name of the attempt in the database.
	Table = "attempts"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "attempts"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
	// StudentTable is the table that holds the student relation/edge.
	StudentTable = "attempts"
	// StudentInverseTable is the table name for the Profile entity.
	// It exists in this package in order to avoid circular dependency with the "profile" package.
	StudentInverseTable = "profiles"
	// StudentColumn is the table column denoting the student relation/edge.
	StudentColumn = "student_id"
	// AnswersTable is the table that holds the answers relation/edge.
	AnswersTable = "attempt_answers"
	// AnswersInverseTable is the table name for the AttemptAnswer entity.
	// It exists in this package in order to avoid circular dependency with the "attemptanswer" package.
	AnswersInverseTable = "attempt_answers"
	// AnswersColumn is the table column denoting the answers relation/edge.
	AnswersColumn = "attempt_id"
)

// Columns holds all SQL columns for attempt fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldTaskID,
	FieldStudentID,
	FieldStartedAt,
	FieldCompletedAt,
	FieldTimeTaken,
	FieldScore,
	FieldGrade,
	FieldMode,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// TimeTakenValidator is a validator for the "time_taken" field. It is called by the builders before save.
	TimeTakenValidator func(int) error
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() string
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// Grade defines the type for the "grade" enum field.
type Grade string

// Grade values.
const (
	GradeFail   Grade = "fail"
	GradePass   Grade = "pass"
	GradeGood   Grade = "good"
	GradeMaster Grade = "master"
)

func (gr Grade) String() string {
	return string(gr)
}

// GradeValidator is a validator for the "grade" field enum values. It is called by the builders before save.
func GradeValidator(gr Grade) error {
	switch gr {
	case GradeFail, GradePass, GradeGood, GradeMaster:
		return nil
	default:
		return fmt.Errorf("attempt: invalid enum value for grade field: %q", gr)
	}
}

// Mode defines the type for the "mode" enum field.
type Mode string

// ModeTest is the default value of the Mode enum.
const DefaultMode = ModeTest

// Mode values.
const (
	ModeTrain Mode = "train"
	ModeTest  Mode = "test"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModeTrain, ModeTest:
		return nil
	default:
		return fmt.Errorf("attempt: invalid enum value for mode field: %q", m)
	}
}

// OrderOption defines the ordering options for the Attempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByTimeTaken orders the results by the time_taken field.
func ByTimeTaken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeTaken, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}

// ByStudentField orders the results by student field.
func ByStudentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStudentStep(), sql.OrderByField(field, opts...))
	}
}

// ByAnswersCount orders the results by answers count.
func ByAnswersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnswersStep(), opts...)
	}
}

// ByAnswers orders the results by answers terms.
func ByAnswers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnswersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
func newStudentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StudentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StudentTable, StudentColumn),
	)
}
func newAnswersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnswersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
	)
}
