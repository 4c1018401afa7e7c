package services

import (
	"context"
	"log"

	"firebase.google.com/go/messaging"
)

type FCMTokenGetter interface {
	GetFCMToken(ctx context.Context, userID int) (string, error)
}

// PushService delivers FCM notifications. A nil *PushService is a no-op, so
// callers never have to guard the optional dependency. Delivery failures are
// logged and never fail the calling operation.
type PushService struct {
	Client   *messaging.Client
	UserRepo FCMTokenGetter
}

func (s *PushService) SendToUser(ctx context.Context, userID int, title, body string, data map[string]string) {
	if s == nil || s.Client == nil {
		return
	}

	token, err := s.UserRepo.GetFCMToken(ctx, userID)
	if err != nil || token == "" {
		return
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": "10"},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{Title: title, Body: body},
					Sound: "default",
				},
			},
		},
	}

	if _, err := s.Client.Send(ctx, message); err != nil {
		log.Printf("push to user %d failed: %v", userID, err)
	}
}
