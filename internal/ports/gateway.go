package ports

// MessageGateway is the inbound surface of the service: an HTTP API, an
// SMTP content filter or a one-shot CLI run. Start must not block.
type MessageGateway interface {
	Start() error
	Stop() error
}
