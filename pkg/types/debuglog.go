package types

// MessageKind classifies a DebugLog entry.
type MessageKind int

// Message kinds in ascending severity.
const (
	MessageDebug MessageKind = iota
	MessageInfo
	MessageError
)

// String returns the lowercase kind name.
func (k MessageKind) String() string {
	switch k {
	case MessageDebug:
		return "debug"
	case MessageInfo:
		return "info"
	case MessageError:
		return "error"
	default:
		return "unknown"
	}
}

// DebugLog is the logging collaborator handed to the asset manager and
// propagated to every bundle. Implementations must treat Log as
// fire-and-forget: it may not block and may not fail.
type DebugLog interface {
	Log(message string, kind MessageKind)
}

// Frontend is the opaque rendering/windowing collaborator passed through
// to bundle initialization and reload. The resolution core never inspects
// it; only bundle implementations give it meaning.
type Frontend interface{}
