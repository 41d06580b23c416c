package rules

import "github.com/mkuiper/kraamlog/internal/models"

// Title text is capped at this many characters; longer note text gets
// an ellipsis appended.
const taskTitleMax = 50

const (
	questionTitlePrefix = "Vraag beantwoorden: "
	todoTitlePrefix     = "Verzoek uitvoeren: "
)

// DeriveTaskFromNote converts a question/todo note record into a
// follow-up task for the kraamhulp. General notes (or notes without a
// category) never produce a task.
func DeriveTaskFromNote(rec models.BabyRecord) *models.Task {
	if rec.Type != models.BabyNote || rec.NoteCategory == nil {
		return nil
	}

	text := ""
	if rec.Notes != nil {
		text = *rec.Notes
	}

	var task models.Task
	switch *rec.NoteCategory {
	case models.NoteQuestion:
		task = models.Task{
			Title:    questionTitlePrefix + truncate(text),
			Category: "other",
			Priority: models.PriorityMedium,
		}
	case models.NoteTodo:
		task = models.Task{
			Title:    todoTitlePrefix + truncate(text),
			Category: "household",
			Priority: models.PriorityLow,
		}
	default:
		return nil
	}

	task.Description = text
	task.Status = models.TaskPending
	task.AssignedTo = models.RoleKraamhulp
	task.CreatedBy = models.RoleParents
	return &task
}

// truncate caps the note text for the task title.
func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= taskTitleMax {
		return text
	}
	return string(runes[:taskTitleMax]) + "..."
}
