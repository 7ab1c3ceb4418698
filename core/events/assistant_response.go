package events

// KindResponseSegment identifies a streamed response text segment.
const KindResponseSegment Kind = "assistant_response.segment"

// ResponseSegment is an append-only piece of the assistant's textual
// response, emitted in stream order.
type ResponseSegment struct {
	Base
	Segment string
}

// NewResponseSegment creates a response segment event.
func NewResponseSegment(segment string) ResponseSegment {
	return ResponseSegment{Base: NewBase(KindResponseSegment), Segment: segment}
}

func (r ResponseSegment) String() string { return r.Segment }
