package http

import (
	"taskdates/internal/model"
	"taskdates/internal/task"
	"taskdates/pkg/calendar"
	"taskdates/pkg/dateparse"
	"taskdates/pkg/recurrence"
	"taskdates/pkg/response"
)

// --- Request DTOs ---

// interpretReq uses a pointer for Text so a missing field and an empty
// string are told apart at the boundary.
type interpretReq struct {
	Text   *string `json:"text"`
	Anchor string  `json:"anchor" binding:"omitempty,datetime=2006-01-02"`
}

func (r interpretReq) toInput() (task.InterpretInput, error) {
	input := task.InterpretInput{Text: *r.Text}
	if r.Anchor != "" {
		anchor, err := calendar.ParseISO(r.Anchor)
		if err != nil {
			return task.InterpretInput{}, err
		}
		input.Anchor = anchor
	}
	return input, nil
}

type nextReq struct {
	Rule   recurrence.Rule `json:"rule" binding:"required"`
	Anchor string          `json:"anchor" binding:"required,datetime=2006-01-02"`
}

func (r nextReq) toInput() (task.NextOccurrenceInput, error) {
	anchor, err := calendar.ParseISO(r.Anchor)
	if err != nil {
		return task.NextOccurrenceInput{}, err
	}
	return task.NextOccurrenceInput{Rule: r.Rule, Anchor: anchor}, nil
}

type createReq struct {
	Title      string           `json:"title" binding:"required,min=1,max=255"`
	Notes      string           `json:"notes" binding:"max=2000"`
	DueText    string           `json:"due_text"`
	DueDate    string           `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Recurrence *recurrence.Rule `json:"recurrence"`
}

func (r createReq) toInput() (task.CreateInput, error) {
	input := task.CreateInput{
		Title:      r.Title,
		Notes:      r.Notes,
		DueText:    r.DueText,
		Recurrence: r.Recurrence,
	}
	if r.DueDate != "" {
		due, err := calendar.ParseISO(r.DueDate)
		if err != nil {
			return task.CreateInput{}, err
		}
		input.DueDate = &due
	}
	return input, nil
}

type listReq struct {
	Completed *bool  `form:"completed"`
	SeriesID  string `form:"series_id"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Completed: r.Completed,
		SeriesID:  r.SeriesID,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string             `json:"id"`
	SeriesID    string             `json:"series_id"`
	Title       string             `json:"title"`
	Notes       string             `json:"notes,omitempty"`
	DueDate     *response.Date     `json:"due_date,omitempty"`
	Recurrence  *recurrence.Rule   `json:"recurrence,omitempty"`
	Completed   bool               `json:"completed"`
	CompletedAt *response.DateTime `json:"completed_at,omitempty"`
	CreatedAt   response.DateTime  `json:"created_at"`
	UpdatedAt   response.DateTime  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:         t.ID,
		SeriesID:   t.SeriesID,
		Title:      t.Title,
		Notes:      t.Notes,
		Recurrence: t.Recurrence,
		Completed:  t.Completed,
		CreatedAt:  response.DateTime(t.CreatedAt),
		UpdatedAt:  response.DateTime(t.UpdatedAt),
	}
	if t.DueDate != nil {
		due := response.Date(*t.DueDate)
		resp.DueDate = &due
	}
	if t.CompletedAt != nil {
		at := response.DateTime(*t.CompletedAt)
		resp.CompletedAt = &at
	}
	return resp
}

type interpretResp struct {
	Anchor     string                `json:"anchor"`
	Candidates []dateparse.Candidate `json:"candidates"`
}

func (h *handler) newInterpretResp(out task.InterpretOutput) interpretResp {
	return interpretResp{
		Anchor:     calendar.FormatISO(out.Anchor),
		Candidates: out.Candidates,
	}
}

type nextResp struct {
	Next string `json:"next,omitempty"`
	None bool   `json:"none"`
}

func (h *handler) newNextResp(out task.NextOccurrenceOutput) nextResp {
	if out.None {
		return nextResp{None: true}
	}
	return nextResp{Next: calendar.FormatISO(out.Next)}
}

type createResp struct {
	Task        taskResp             `json:"task"`
	Interpreted *dateparse.Candidate `json:"interpreted,omitempty"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{
		Task:        newTaskResp(out.Task),
		Interpreted: out.Interpreted,
	}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type completeResp struct {
	Task taskResp  `json:"task"`
	Next *taskResp `json:"next,omitempty"`
}

func (h *handler) newCompleteResp(out task.CompleteOutput) completeResp {
	resp := completeResp{Task: newTaskResp(out.Task)}
	if out.Next != nil {
		next := newTaskResp(*out.Next)
		resp.Next = &next
	}
	return resp
}
