package chat

import (
	"fmt"

	"github.com/astrochat/astrochat/internal/types"
)

const (
	zoneHeaderBack  = "header-back"
	zoneReplyCancel = "reply-cancel"
	zoneSend        = "send"
	zoneSubmit      = "rating-submit"
	zoneClose       = "rating-close"
)

func messageZoneID(id string) string { return "msg-" + id }
func likeZoneID(id string) string    { return "like-" + id }
func dislikeZoneID(id string) string { return "dislike-" + id }

func reactionZoneID(id string, i int) string {
	return fmt.Sprintf("react-%s-%d", id, i)
}

func reasonZoneID(id string, reason types.FeedbackReason) string {
	return fmt.Sprintf("reason-%s-%s", id, reason)
}

func starZoneID(n int) string {
	return fmt.Sprintf("star-%d", n)
}
