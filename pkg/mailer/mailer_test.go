package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendGridMailerRejectsEmptyRecipient(t *testing.T) {
	m := NewSendGridMailer("SG.test", "noreply@wuquf.sa", "Wuquf")
	err := m.Send(context.Background(), Message{Subject: "hi", PlainText: "hi"})
	assert.EqualError(t, err, "recipient email address cannot be empty")
}

func TestNopMailer(t *testing.T) {
	assert.NoError(t, NopMailer{}.Send(context.Background(), Message{ToEmail: "a@b.c"}))
}
