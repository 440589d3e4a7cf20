package dummymail

import (
	"log"
	"sync"

	"github.com/trezcool/darasa/core"
)

// service captures rendered messages instead of sending them; used in tests.
type service struct {
	mu   sync.Mutex
	sent []core.EmailMessage
}

var _ core.EmailService = (*service)(nil)

func NewService() *service { //nolint:revive // tests need the concrete type
	return &service{}
}

func (svc *service) SendMessages(messages ...*core.EmailMessage) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	for _, msg := range messages {
		if err := msg.Render(); err != nil {
			log.Printf("rendering email: %v", err)
			continue
		}
		if msg.HasRecipients() && msg.HasContent() {
			svc.sent = append(svc.sent, *msg)
		}
	}
}

// SentMessages returns a copy of everything captured so far.
func (svc *service) SentMessages() []core.EmailMessage {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return append([]core.EmailMessage(nil), svc.sent...)
}
