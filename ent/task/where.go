// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/mathcoach/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// TaskType applies equality check predicate on the "task_type" field. It's identical to TaskTypeEQ.
func TaskType(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTaskType, v))
}

// CreatorID applies equality check predicate on the "creator_id" field. It's identical to CreatorIDEQ.
func CreatorID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatorID, v))
}

// AssignedToID applies equality check predicate on the "assigned_to_id" field. It's identical to AssignedToIDEQ.
func AssignedToID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssignedToID, v))
}

// TimeLimit applies equality check predicate on the "time_limit" field. It's identical to TimeLimitEQ.
func TimeLimit(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTimeLimit, v))
}

// PassScore applies equality check predicate on the "pass_score" field. It's identical to PassScoreEQ.
func PassScore(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPassScore, v))
}

// GoodScore applies equality check predicate on the "good_score" field. It's identical to GoodScoreEQ.
func GoodScore(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldGoodScore, v))
}

// MasterScore applies equality check predicate on the "master_score" field. It's identical to MasterScoreEQ.
func MasterScore(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMasterScore, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTitle, v))
}

// TaskTypeEQ applies the EQ predicate on the "task_type" field.
func TaskTypeEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTaskType, v))
}

// TaskTypeNEQ applies the NEQ predicate on the "task_type" field.
func TaskTypeNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTaskType, v))
}

// TaskTypeIn applies the In predicate on the "task_type" field.
func TaskTypeIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTaskType, vs...))
}

// TaskTypeNotIn applies the NotIn predicate on the "task_type" field.
func TaskTypeNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTaskType, vs...))
}

// TaskTypeGT applies the GT predicate on the "task_type" field.
func TaskTypeGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTaskType, v))
}

// TaskTypeGTE applies the GTE predicate on the "task_type" field.
func TaskTypeGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTaskType, v))
}

// TaskTypeLT applies the LT predicate on the "task_type" field.
func TaskTypeLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTaskType, v))
}

// TaskTypeLTE applies the LTE predicate on the "task_type" field.
func TaskTypeLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTaskType, v))
}

// TaskTypeContains applies the Contains predicate on the "task_type" field.
func TaskTypeContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTaskType, v))
}

// TaskTypeHasPrefix applies the HasPrefix predicate on the "task_type" field.
func TaskTypeHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTaskType, v))
}

// TaskTypeHasSuffix applies the HasSuffix predicate on the "task_type" field.
func TaskTypeHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTaskType, v))
}

// TaskTypeEqualFold applies the EqualFold predicate on the "task_type" field.
func TaskTypeEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTaskType, v))
}

// TaskTypeContainsFold applies the ContainsFold predicate on the "task_type" field.
func TaskTypeContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTaskType, v))
}

// CreatorIDEQ applies the EQ predicate on the "creator_id" field.
func CreatorIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatorID, v))
}

// CreatorIDNEQ applies the NEQ predicate on the "creator_id" field.
func CreatorIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatorID, v))
}

// CreatorIDIn applies the In predicate on the "creator_id" field.
func CreatorIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatorID, vs...))
}

// CreatorIDNotIn applies the NotIn predicate on the "creator_id" field.
func CreatorIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatorID, vs...))
}

// CreatorIDGT applies the GT predicate on the "creator_id" field.
func CreatorIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatorID, v))
}

// CreatorIDGTE applies the GTE predicate on the "creator_id" field.
func CreatorIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatorID, v))
}

// CreatorIDLT applies the LT predicate on the "creator_id" field.
func CreatorIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatorID, v))
}

// CreatorIDLTE applies the LTE predicate on the "creator_id" field.
func CreatorIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatorID, v))
}

// CreatorIDContains applies the Contains predicate on the "creator_id" field.
func CreatorIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCreatorID, v))
}

// CreatorIDHasPrefix applies the HasPrefix predicate on the "creator_id" field.
func CreatorIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCreatorID, v))
}

// CreatorIDHasSuffix applies the HasSuffix predicate on the "creator_id" field.
func CreatorIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCreatorID, v))
}

// CreatorIDEqualFold applies the EqualFold predicate on the "creator_id" field.
func CreatorIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCreatorID, v))
}

// CreatorIDContainsFold applies the ContainsFold predicate on the "creator_id" field.
func CreatorIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCreatorID, v))
}

// AssignedToIDEQ applies the EQ predicate on the "assigned_to_id" field.
func AssignedToIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssignedToID, v))
}

// AssignedToIDNEQ applies the NEQ predicate on the "assigned_to_id" field.
func AssignedToIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAssignedToID, v))
}

// AssignedToIDIn applies the In predicate on the "assigned_to_id" field.
func AssignedToIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAssignedToID, vs...))
}

// AssignedToIDNotIn applies the NotIn predicate on the "assigned_to_id" field.
func AssignedToIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAssignedToID, vs...))
}

// AssignedToIDGT applies the GT predicate on the "assigned_to_id" field.
func AssignedToIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAssignedToID, v))
}

// AssignedToIDGTE applies the GTE predicate on the "assigned_to_id" field.
func AssignedToIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAssignedToID, v))
}

// AssignedToIDLT applies the LT predicate on the "assigned_to_id" field.
func AssignedToIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAssignedToID, v))
}

// AssignedToIDLTE applies the LTE predicate on the "assigned_to_id" field.
func AssignedToIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAssignedToID, v))
}

// AssignedToIDContains applies the Contains predicate on the "assigned_to_id" field.
func AssignedToIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldAssignedToID, v))
}

// AssignedToIDHasPrefix applies the HasPrefix predicate on the "assigned_to_id" field.
func AssignedToIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldAssignedToID, v))
}

// AssignedToIDHasSuffix applies the HasSuffix predicate on the "assigned_to_id" field.
func AssignedToIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldAssignedToID, v))
}

// AssignedToIDIsNil applies the IsNil predicate on the "assigned_to_id" field.
func AssignedToIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldAssignedToID))
}

// AssignedToIDNotNil applies the NotNil predicate on the "assigned_to_id" field.
func AssignedToIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldAssignedToID))
}

// AssignedToIDEqualFold applies the EqualFold predicate on the "assigned_to_id" field.
func AssignedToIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldAssignedToID, v))
}

// AssignedToIDContainsFold applies the ContainsFold predicate on the "assigned_to_id" field.
func AssignedToIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldAssignedToID, v))
}

// TimeLimitEQ applies the EQ predicate on the "time_limit" field.
func TimeLimitEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTimeLimit, v))
}

// TimeLimitNEQ applies the NEQ predicate on the "time_limit" field.
func TimeLimitNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTimeLimit, v))
}

// TimeLimitIn applies the In predicate on the "time_limit" field.
func TimeLimitIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTimeLimit, vs...))
}

// TimeLimitNotIn applies the NotIn predicate on the "time_limit" field.
func TimeLimitNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTimeLimit, vs...))
}

// TimeLimitGT applies the GT predicate on the "time_limit" field.
func TimeLimitGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTimeLimit, v))
}

// TimeLimitGTE applies the GTE predicate on the "time_limit" field.
func TimeLimitGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTimeLimit, v))
}

// TimeLimitLT applies the LT predicate on the "time_limit" field.
func TimeLimitLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTimeLimit, v))
}

// TimeLimitLTE applies the LTE predicate on the "time_limit" field.
func TimeLimitLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTimeLimit, v))
}

// PassScoreEQ applies the EQ predicate on the "pass_score" field.
func PassScoreEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPassScore, v))
}

// PassScoreNEQ applies the NEQ predicate on the "pass_score" field.
func PassScoreNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPassScore, v))
}

// PassScoreIn applies the In predicate on the "pass_score" field.
func PassScoreIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPassScore, vs...))
}

// PassScoreNotIn applies the NotIn predicate on the "pass_score" field.
func PassScoreNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPassScore, vs...))
}

// PassScoreGT applies the GT predicate on the "pass_score" field.
func PassScoreGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPassScore, v))
}

// PassScoreGTE applies the GTE predicate on the "pass_score" field.
func PassScoreGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPassScore, v))
}

// PassScoreLT applies the LT predicate on the "pass_score" field.
func PassScoreLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPassScore, v))
}

// PassScoreLTE applies the LTE predicate on the "pass_score" field.
func PassScoreLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPassScore, v))
}

// GoodScoreEQ applies the EQ predicate on the "good_score" field.
func GoodScoreEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldGoodScore, v))
}

// GoodScoreNEQ applies the NEQ predicate on the "good_score" field.
func GoodScoreNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldGoodScore, v))
}

// GoodScoreIn applies the In predicate on the "good_score" field.
func GoodScoreIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldGoodScore, vs...))
}

// GoodScoreNotIn applies the NotIn predicate on the "good_score" field.
func GoodScoreNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldGoodScore, vs...))
}

// GoodScoreGT applies the GT predicate on the "good_score" field.
func GoodScoreGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldGoodScore, v))
}

// GoodScoreGTE applies the GTE predicate on the "good_score" field.
func GoodScoreGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldGoodScore, v))
}

// GoodScoreLT applies the LT predicate on the "good_score" field.
func GoodScoreLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldGoodScore, v))
}

// GoodScoreLTE applies the LTE predicate on the "good_score" field.
func GoodScoreLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldGoodScore, v))
}

// MasterScoreEQ applies the EQ predicate on the "master_score" field.
func MasterScoreEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMasterScore, v))
}

// MasterScoreNEQ applies the NEQ predicate on the "master_score" field.
func MasterScoreNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldMasterScore, v))
}

// MasterScoreIn applies the In predicate on the "master_score" field.
func MasterScoreIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldMasterScore, vs...))
}

// MasterScoreNotIn applies the NotIn predicate on the "master_score" field.
func MasterScoreNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldMasterScore, vs...))
}

// MasterScoreGT applies the GT predicate on the "master_score" field.
func MasterScoreGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldMasterScore, v))
}

// MasterScoreGTE applies the GTE predicate on the "master_score" field.
func MasterScoreGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldMasterScore, v))
}

// MasterScoreLT applies the LT predicate on the "master_score" field.
func MasterScoreLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldMasterScore, v))
}

// MasterScoreLTE applies the LTE predicate on the "master_score" field.
func MasterScoreLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldMasterScore, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldIsActive, v))
}

// HasCreator applies the HasEdge predicate on the "creator" edge.
func HasCreator() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CreatorTable, CreatorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreatorWith applies the HasEdge predicate on the "creator" edge with a given conditions (other predicates).
func HasCreatorWith(preds ...predicate.Profile) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newCreatorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignee applies the HasEdge predicate on the "assignee" edge.
func HasAssignee() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AssigneeTable, AssigneeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssigneeWith applies the HasEdge predicate on the "assignee" edge with a given conditions (other predicates).
func HasAssigneeWith(preds ...predicate.Profile) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newAssigneeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAttempts applies the HasEdge predicate on the "attempts" edge.
func HasAttempts() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttemptsWith applies the HasEdge predicate on the "attempts" edge with a given conditions (other predicates).
func HasAttemptsWith(preds ...predicate.Attempt) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newAttemptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
