package mocks

import "sync"

// SentCode records one dispatched notification.
type SentCode struct {
	Destination string
	Code        string
}

// MockNotificationSender captures dispatched codes for inspection.
type MockNotificationSender struct {
	mu   sync.Mutex
	sent []SentCode

	SendFunc func(destination, code string) error
}

func NewMockNotificationSender() *MockNotificationSender {
	return &MockNotificationSender{}
}

func (m *MockNotificationSender) Send(destination, code string) error {
	m.mu.Lock()
	m.sent = append(m.sent, SentCode{Destination: destination, Code: code})
	m.mu.Unlock()
	if m.SendFunc != nil {
		return m.SendFunc(destination, code)
	}
	return nil
}

// Sent returns a copy of everything dispatched so far.
func (m *MockNotificationSender) Sent() []SentCode {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentCode, len(m.sent))
	copy(out, m.sent)
	return out
}

// LastCode returns the most recently dispatched code, or "".
func (m *MockNotificationSender) LastCode() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return ""
	}
	return m.sent[len(m.sent)-1].Code
}
