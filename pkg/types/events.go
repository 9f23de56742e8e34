package types

// AlertSubmitted carries one raw alert from an intake endpoint onto the
// bus. The routing key encodes the source so that consumers can bind to
// a single source or to alerts.# for all of them.
type AlertSubmitted struct {
	Source  string `json:"source"`
	Payload []byte `json:"-"`
}

func (a *AlertSubmitted) ContentType() string {
	return "application/json"
}
func (a *AlertSubmitted) TopicName() string {
	return "alerts." + a.Source
}
func (a *AlertSubmitted) Body() []byte {
	return a.Payload
}
