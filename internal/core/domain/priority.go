package domain

const (
	PriorityMin = 1
	PriorityMax = 10
)

// PriorityBucket wraps a 1-10 priority level. Values are immutable;
// changing a task's priority replaces the whole bucket.
type PriorityBucket struct {
	level int
}

func NewPriorityBucket(level int) (PriorityBucket, error) {
	if level < PriorityMin || level > PriorityMax {
		return PriorityBucket{}, ErrInvalidPriority
	}
	return PriorityBucket{level: level}, nil
}

func (p PriorityBucket) Level() int {
	return p.level
}

func (p PriorityBucket) Label() string {
	switch {
	case p.level <= 3:
		return "Low"
	case p.level <= 6:
		return "Medium"
	case p.level <= 8:
		return "High"
	default:
		return "Critical"
	}
}

func (p PriorityBucket) Color() string {
	switch {
	case p.level <= 3:
		return "#2E7D32"
	case p.level <= 6:
		return "#F9A825"
	case p.level <= 8:
		return "#EF6C00"
	default:
		return "#C62828"
	}
}

var priorityDescriptions = [PriorityMax + 1]string{
	1:  "Minimal urgency, handle when convenient",
	2:  "Low urgency, schedule freely",
	3:  "Low urgency, keep on the backlog",
	4:  "Moderate urgency, plan for this sprint",
	5:  "Moderate urgency, standard priority",
	6:  "Moderate urgency, prefer over lower work",
	7:  "High urgency, pick up next",
	8:  "High urgency, interrupts planned work",
	9:  "Critical, requires immediate attention",
	10: "Critical, drop everything else",
}

func (p PriorityBucket) Description() string {
	if p.level < PriorityMin || p.level > PriorityMax {
		return ""
	}
	return priorityDescriptions[p.level]
}

// Compare returns -1, 0 or 1 ordering buckets by level.
func (p PriorityBucket) Compare(other PriorityBucket) int {
	switch {
	case p.level < other.level:
		return -1
	case p.level > other.level:
		return 1
	default:
		return 0
	}
}

func (p PriorityBucket) Less(other PriorityBucket) bool {
	return p.level < other.level
}
