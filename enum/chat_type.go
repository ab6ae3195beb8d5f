package enum

type ChatType string

const (
	PRIVATE ChatType = "personal"
	GROUP   ChatType = "group"
)
