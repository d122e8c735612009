package domain

// TaskLimits carries the capacity ceilings enforced by Task mutators.
// Hoisted into a value so tests can tighten or relax them without
// touching entity logic; production wiring uses DefaultTaskLimits.
type TaskLimits struct {
	MinAssignees     int
	MaxAssignees     int
	MaxTotalFileSize int64
	AllowedFileTypes []string
}

func DefaultTaskLimits() TaskLimits {
	return TaskLimits{
		MinAssignees:     1,
		MaxAssignees:     5,
		MaxTotalFileSize: 50 * 1024 * 1024,
		AllowedFileTypes: []string{"pdf", "png", "jpeg", "jpg", "doc", "docx", "xls", "xlsx"},
	}
}

func (l TaskLimits) allowsFileType(fileType string) bool {
	for _, t := range l.AllowedFileTypes {
		if t == fileType {
			return true
		}
	}
	return false
}
