package opportunity

type Status string

const (
	StatusDraft      Status = "draft"
	StatusOpen       Status = "open"
	StatusFull       Status = "full"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusOpen, StatusFull, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsEditable reports whether field edits are still allowed. FULL counts as
// editable like OPEN: capacity is reached but nothing has started yet.
func (s Status) IsEditable() bool {
	switch s {
	case StatusDraft, StatusOpen, StatusFull:
		return true
	default:
		return false
	}
}

// IsCancellable reports whether the promoter can still cancel.
func (s Status) IsCancellable() bool {
	return s.IsEditable()
}

// IsTerminal reports statuses no transition ever leaves.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
