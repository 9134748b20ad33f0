package projections

import (
	"context"

	"waaranders/internal/adapters/storage/todo"
	"waaranders/internal/adapters/storage/volunteer"
	"waaranders/internal/application/ordering"
	domainTodo "waaranders/internal/domain/todo"
)

// UnknownAssigneeLabel is shown for todos whose assignee no longer resolves
// to a volunteer. It is display-only; sorting treats these as unassigned.
const UnknownAssigneeLabel = "Onbekend"

// GetTodoListQuery carries query parameters.
type GetTodoListQuery struct {
	Mode       ordering.Mode
	OpenOnly   bool
	AssigneeID string // restrict to one volunteer's todos
}

// TodoRow is a todo decorated with its resolved assignee name.
type TodoRow struct {
	Todo         domainTodo.Todo
	AssigneeName string // UnknownAssigneeLabel when the id does not resolve
}

// Due implements ordering.Item.
func (r TodoRow) Due() (string, bool) {
	if !r.Todo.HasDueDate() {
		return "", false
	}
	return r.Todo.DueDate.Format("2006-01-02"), true
}

// PriorityRank implements ordering.Item.
func (r TodoRow) PriorityRank() int { return r.Todo.PriorityRank() }

// StatusRank implements ordering.Item.
func (r TodoRow) StatusRank() int { return r.Todo.StatusRank() }

// AssigneeLabel implements ordering.Item. Unassigned and unresolvable
// assignees both yield the empty label so they sort first as a group.
func (r TodoRow) AssigneeLabel() string {
	if r.Todo.AssigneeID == "" || r.AssigneeName == UnknownAssigneeLabel {
		return ""
	}
	return r.AssigneeName
}

// SortText implements ordering.Item.
func (r TodoRow) SortText() string { return r.Todo.Text }

// GetTodoListResult carries the query result.
type GetTodoListResult struct {
	Todos []TodoRow
	Mode  ordering.Mode
}

// GetTodoListDeps holds dependencies for GetTodoList.
type GetTodoListDeps struct {
	TodoStore      TodoStore
	VolunteerStore VolunteerStore
}

// QueryGetTodoList retrieves todos in display order for the requested mode.
// PRE: query.Mode is a parsed mode (ByPriority or ByAssignee)
// POST: Todos are ordered by due date, then the mode's secondary key,
// then status, then text
func QueryGetTodoList(ctx context.Context, query GetTodoListQuery, deps GetTodoListDeps) (GetTodoListResult, error) {
	todos, err := deps.TodoStore.List(ctx, todo.ListFilter{
		OpenOnly:   query.OpenOnly,
		AssigneeID: query.AssigneeID,
	})
	if err != nil {
		return GetTodoListResult{}, err
	}

	// Resolve assignee names once for all rows
	names, err := assigneeNames(ctx, deps.VolunteerStore)
	if err != nil {
		return GetTodoListResult{}, err
	}

	rows := make([]TodoRow, 0, len(todos))
	for _, t := range todos {
		row := TodoRow{Todo: t}
		if t.AssigneeID != "" {
			name, ok := names[t.AssigneeID]
			if !ok {
				name = UnknownAssigneeLabel
			}
			row.AssigneeName = name
		}
		rows = append(rows, row)
	}

	return GetTodoListResult{
		Todos: ordering.Sort(rows, query.Mode),
		Mode:  query.Mode,
	}, nil
}

// assigneeNames maps volunteer IDs to display names.
func assigneeNames(ctx context.Context, store VolunteerStore) (map[string]string, error) {
	vols, err := store.List(ctx, volunteer.ListFilter{})
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(vols))
	for _, v := range vols {
		names[v.ID] = v.Name
	}
	return names, nil
}
