package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishFileCreated 发布 fd.file.created 事件。
func PublishFileCreated(pub message.Publisher, payload FileCreatedPayload, opts ...func(*EventHeader)) error {
	return publish(pub, TopicFileCreated, payload, opts...)
}

// PublishFileTrashed 发布 fd.file.trashed 事件。
func PublishFileTrashed(pub message.Publisher, payload FileTrashedPayload, opts ...func(*EventHeader)) error {
	return publish(pub, TopicFileTrashed, payload, opts...)
}

// PublishFileRestored 发布 fd.file.restored 事件。
func PublishFileRestored(pub message.Publisher, payload FileRestoredPayload, opts ...func(*EventHeader)) error {
	return publish(pub, TopicFileRestored, payload, opts...)
}

// PublishFilePurged 发布 fd.file.purged 事件。
// 用于下游审计清除行为；收藏级联移除在事件发出前已经完成。
func PublishFilePurged(pub message.Publisher, payload FilePurgedPayload, opts ...func(*EventHeader)) error {
	return publish(pub, TopicFilePurged, payload, opts...)
}

// PublishFavoriteToggled 发布 fd.favorite.toggled 事件。
func PublishFavoriteToggled(pub message.Publisher, payload FavoriteToggledPayload, opts ...func(*EventHeader)) error {
	return publish(pub, TopicFavoriteToggled, payload, opts...)
}

// ParseFilePurged 将 Watermill 消息解析为强类型 Envelope（FilePurgedPayload）。
func ParseFilePurged(msg *message.Message) (Message[FilePurgedPayload], error) {
	return ParseWatermillMessage[FilePurgedPayload](msg)
}

func publish[T any](pub message.Publisher, topic string, payload T, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(topic, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(topic, msg)
}
