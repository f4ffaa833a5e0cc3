package policies

import (
	"testing"

	model "github.com/maikeru-desu/genius-todolist/internal/models"
)

func TestAllows(t *testing.T) {
	owned := &model.Todo{ID: "t1", UserID: "alice"}

	cases := []struct {
		name    string
		action  Action
		actorID string
		todo    *model.Todo
		want    bool
	}{
		{"owner can view", ActionView, "alice", owned, true},
		{"owner can update", ActionUpdate, "alice", owned, true},
		{"owner can delete", ActionDelete, "alice", owned, true},
		{"stranger cannot view", ActionView, "bob", owned, false},
		{"stranger cannot update", ActionUpdate, "bob", owned, false},
		{"stranger cannot delete", ActionDelete, "bob", owned, false},
		{"anyone can create", ActionCreate, "bob", nil, true},
		{"anyone can list", ActionViewAny, "bob", nil, true},
		{"nil todo denies view", ActionView, "alice", nil, false},
		{"unknown action denies", Action("publish"), "alice", owned, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Allows(tc.action, tc.actorID, tc.todo); got != tc.want {
				t.Errorf("Allows(%s, %s) = %v, want %v", tc.action, tc.actorID, got, tc.want)
			}
		})
	}
}
