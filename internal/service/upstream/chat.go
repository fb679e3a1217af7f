package upstream

import (
	"context"

	"MarketLens/internal/domain/models"
	domainservice "MarketLens/internal/domain/service"
	"MarketLens/internal/service/session"
)

// ChatClient forwards assistant queries.
type ChatClient struct {
	t *Transport
}

func NewChatClient(t *Transport) domainservice.ChatSource {
	return &ChatClient{t: t}
}

func (c *ChatClient) Query(ctx context.Context, sess *session.Session, message string) (models.ChatReply, error) {
	var reply models.ChatReply
	body := map[string]string{"message": message}
	if err := c.t.post(ctx, sess, "chat", "/chat/query", body, &reply); err != nil {
		return models.ChatReply{}, err
	}
	return reply, nil
}
