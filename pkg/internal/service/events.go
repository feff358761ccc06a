package service

import (
	"github.com/yeisme/filedrive/pkg/configs"
	"github.com/yeisme/filedrive/pkg/internal/model"
	nlog "github.com/yeisme/filedrive/pkg/log"
	"github.com/yeisme/filedrive/pkg/queue"
)

// 事件发布为尽力而为：MQ 不可用或发布失败只记日志，不影响请求结果.

func fileRef(f *model.File) queue.FileRef {
	return queue.FileRef{
		FileID:     f.ID,
		Name:       f.Name,
		Type:       f.Type,
		StorageRef: f.StorageRef,
		ScopeID:    f.ScopeID,
		OwnerID:    f.OwnerUserID,
	}
}

func (s *FileService) eventsEnabled() bool {
	return s.mqClient != nil && configs.GetConfig().Events.Enabled
}

func (s *FileService) publishFileCreated(f *model.File) {
	if !s.eventsEnabled() || !configs.GetConfig().Events.File.Created {
		return
	}

	err := queue.PublishFileCreated(s.mqClient.Publisher(), queue.FileCreatedPayload{File: fileRef(f)},
		queue.WithProducer(configs.AppName))
	if err != nil {
		nlog.Logger().Warn().Err(err).Str("file_id", f.ID).Msg("publish file created event failed")
	}
}

func (s *FileService) publishFileTrashed(f *model.File, requestedBy string) {
	if !s.eventsEnabled() || !configs.GetConfig().Events.File.Trashed {
		return
	}

	err := queue.PublishFileTrashed(s.mqClient.Publisher(), queue.FileTrashedPayload{File: fileRef(f), RequestedBy: requestedBy},
		queue.WithProducer(configs.AppName))
	if err != nil {
		nlog.Logger().Warn().Err(err).Str("file_id", f.ID).Msg("publish file trashed event failed")
	}
}

func (s *FileService) publishFileRestored(f *model.File, restoredBy string) {
	if !s.eventsEnabled() || !configs.GetConfig().Events.File.Restored {
		return
	}

	err := queue.PublishFileRestored(s.mqClient.Publisher(), queue.FileRestoredPayload{File: fileRef(f), RestoredBy: restoredBy},
		queue.WithProducer(configs.AppName))
	if err != nil {
		nlog.Logger().Warn().Err(err).Str("file_id", f.ID).Msg("publish file restored event failed")
	}
}

func (s *FileService) publishFilePurged(f *model.File, favoritesRemoved int, source string) {
	if !s.eventsEnabled() || !configs.GetConfig().Events.File.Purged {
		return
	}

	err := queue.PublishFilePurged(s.mqClient.Publisher(), queue.FilePurgedPayload{
		File:             fileRef(f),
		FavoritesRemoved: favoritesRemoved,
		Source:           source,
	}, queue.WithProducer(configs.AppName))
	if err != nil {
		nlog.Logger().Warn().Err(err).Str("file_id", f.ID).Msg("publish file purged event failed")
	}
}

func (s *FileService) publishFavoriteToggled(f *model.File, favoritedBy string, favorited bool) {
	if !s.eventsEnabled() || !configs.GetConfig().Events.Favorite.Toggled {
		return
	}

	err := queue.PublishFavoriteToggled(s.mqClient.Publisher(), queue.FavoriteToggledPayload{
		File:        fileRef(f),
		FavoritedBy: favoritedBy,
		Favorited:   favorited,
	}, queue.WithProducer(configs.AppName))
	if err != nil {
		nlog.Logger().Warn().Err(err).Str("file_id", f.ID).Msg("publish favorite toggled event failed")
	}
}
