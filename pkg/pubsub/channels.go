package pubsub

import "strings"

// Channels for relationship events.
const (
	ChannelLikes   = "social.likes"
	ChannelFollows = "social.follows"
	ChannelReplies = "social.replies"
)

// Event types.
const (
	EventLikeCreated   = "like.created"
	EventLikeDeleted   = "like.deleted"
	EventFollowCreated = "follow.created"
	EventFollowDeleted = "follow.deleted"
	EventReplyCreated  = "reply.created"
	EventReplyDeleted  = "reply.deleted"
)

// Channels lists every channel the services publish to.
func Channels() []string {
	return []string{ChannelLikes, ChannelFollows, ChannelReplies}
}

// channelToTopic converts a dotted channel to a Kafka topic name.
//
//	"social.likes" → "social-likes"
func channelToTopic(channel string) string {
	return strings.ReplaceAll(channel, ".", "-")
}

// LikePayload describes a like event.
type LikePayload struct {
	LikeID    string `json:"like_id"`
	AccountID string `json:"account_id"`
	PostID    string `json:"post_id"`
}

// FollowPayload describes a follow event.
type FollowPayload struct {
	FollowID   string `json:"follow_id"`
	FollowerID string `json:"follower_id"`
	FolloweeID string `json:"followee_id"`
}

// ReplyPayload describes a reply event.
type ReplyPayload struct {
	ReplyID   string `json:"reply_id"`
	AccountID string `json:"account_id"`
	PostID    string `json:"post_id"`
}
