package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bloom-be/internal/config"
	"bloom-be/internal/dto"
	"bloom-be/internal/entity"
	"bloom-be/internal/pkg/logger"
	"bloom-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type IPhotoService interface {
	Upload(ctx context.Context, userId uuid.UUID, file *multipart.FileHeader) (*dto.PhotoResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]dto.PhotoResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, photoId uuid.UUID) error
	SetPrimary(ctx context.Context, userId uuid.UUID, photoId uuid.UUID) error
	Reorder(ctx context.Context, userId uuid.UUID, req *dto.ReorderPhotosRequest) ([]dto.PhotoResponse, error)
}

type photoService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	cfg        *config.Config
	log        logger.ILogger
}

func NewPhotoService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, cfg *config.Config, log logger.ILogger) IPhotoService {
	return &photoService{
		uowFactory: uowFactory,
		publisher:  publisher,
		cfg:        cfg,
		log:        log,
	}
}

func (s *photoService) queueRecompute(ctx context.Context, userId uuid.UUID) {
	payload, err := json.Marshal(RecomputeCompletionMessage{UserId: userId})
	if err == nil {
		err = s.publisher.Publish(ctx, payload)
	}
	if err != nil {
		s.log.Warn("PhotoService", "Failed to queue completion recompute", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}
}

func (s *photoService) ownedPhoto(ctx context.Context, uow unitofwork.UnitOfWork, userId, photoId uuid.UUID) (*entity.Profile, *entity.ProfilePhoto, error) {
	profile, err := uow.ProfileRepository().FindByUserID(ctx, userId)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil {
		return nil, nil, errors.New("profile not found")
	}

	photos, err := uow.PhotoRepository().FindByProfile(ctx, profile.Id)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range photos {
		if p.Id == photoId {
			return profile, p, nil
		}
	}
	return nil, nil, errors.New("photo not found")
}

func (s *photoService) Upload(ctx context.Context, userId uuid.UUID, file *multipart.FileHeader) (*dto.PhotoResponse, error) {
	if file.Size > s.cfg.Upload.MaxPhotoBytes {
		return nil, errors.New("photo too large")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExtensions[ext] {
		return nil, errors.New("unsupported photo format")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindByUserID(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}

	count, err := uow.PhotoRepository().CountByProfile(ctx, profile.Id)
	if err != nil {
		return nil, err
	}
	if int(count) >= s.cfg.Upload.MaxPhotos {
		return nil, fmt.Errorf("photo limit of %d reached", s.cfg.Upload.MaxPhotos)
	}

	if err := os.MkdirAll(s.cfg.Upload.Dir, 0o755); err != nil {
		return nil, err
	}

	photoId := uuid.New()
	filename := photoId.String() + ext
	dstPath := filepath.Join(s.cfg.Upload.Dir, filename)

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return nil, err
	}

	photo := &entity.ProfilePhoto{
		Id:         photoId,
		ProfileId:  profile.Id,
		URL:        "/uploads/" + filename,
		OrderIndex: int(count),
		IsPrimary:  count == 0, // first photo becomes primary
		CreatedAt:  time.Now(),
	}

	if err := uow.PhotoRepository().Create(ctx, photo); err != nil {
		os.Remove(dstPath)
		return nil, err
	}

	s.queueRecompute(ctx, userId)

	resp := photoToResponse(photo)
	return &resp, nil
}

func (s *photoService) List(ctx context.Context, userId uuid.UUID) ([]dto.PhotoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindByUserID(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}

	photos, err := uow.PhotoRepository().FindByProfile(ctx, profile.Id)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PhotoResponse, len(photos))
	for i, p := range photos {
		out[i] = photoToResponse(p)
	}
	return out, nil
}

func (s *photoService) Delete(ctx context.Context, userId uuid.UUID, photoId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, photo, err := s.ownedPhoto(ctx, uow, userId, photoId)
	if err != nil {
		return err
	}

	if err := uow.PhotoRepository().Delete(ctx, photo.Id); err != nil {
		return err
	}

	// Keep a primary photo if any remain.
	if photo.IsPrimary {
		remaining, err := uow.PhotoRepository().FindByProfile(ctx, profile.Id)
		if err == nil && len(remaining) > 0 {
			remaining[0].IsPrimary = true
			_ = uow.PhotoRepository().Update(ctx, remaining[0])
		}
	}

	// Stored file is best-effort cleanup.
	if name := filepath.Base(photo.URL); name != "" {
		_ = os.Remove(filepath.Join(s.cfg.Upload.Dir, name))
	}

	s.queueRecompute(ctx, userId)
	return nil
}

func (s *photoService) SetPrimary(ctx context.Context, userId uuid.UUID, photoId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, photo, err := s.ownedPhoto(ctx, uow, userId, photoId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.PhotoRepository().ClearPrimary(ctx, profile.Id); err != nil {
		return err
	}

	photo.IsPrimary = true
	if err := uow.PhotoRepository().Update(ctx, photo); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *photoService) Reorder(ctx context.Context, userId uuid.UUID, req *dto.ReorderPhotosRequest) ([]dto.PhotoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindByUserID(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}

	photos, err := uow.PhotoRepository().FindByProfile(ctx, profile.Id)
	if err != nil {
		return nil, err
	}

	byId := make(map[uuid.UUID]*entity.ProfilePhoto, len(photos))
	for _, p := range photos {
		byId[p.Id] = p
	}
	if len(req.PhotoIds) != len(photos) {
		return nil, errors.New("reorder must list every photo exactly once")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	for i, id := range req.PhotoIds {
		p, ok := byId[id]
		if !ok {
			return nil, errors.New("photo not found")
		}
		p.OrderIndex = i
		if err := uow.PhotoRepository().Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return s.List(ctx, userId)
}
