package service

import (
	"context"
	"errors"
	"time"

	"bloom-be/internal/dto"
	"bloom-be/internal/entity"
	"bloom-be/internal/pkg/logger"
	"bloom-be/internal/repository/specification"
	"bloom-be/internal/repository/unitofwork"
	"bloom-be/pkg/events"
	pktNats "bloom-be/pkg/nats"
	"bloom-be/pkg/questionnaire"

	"github.com/google/uuid"
)

// mbtiQuestionKey is the catalog question whose answer carries the member's
// own MBTI type.
const mbtiQuestionKey = "mbti_type"

type IMatchService interface {
	// CreateMatch pairs two approved profiles. Compatibility comes from
	// both members' MBTI answers when present.
	CreateMatch(ctx context.Context, req *dto.CreateMatchRequest) (*dto.MatchResponse, error)

	// GetBoard lists the caller's matches, newest first.
	GetBoard(ctx context.Context, userId uuid.UUID) (*dto.MatchBoardResponse, error)

	// Respond records an accept or decline. Both sides accepting makes the
	// match mutual; either side declining closes it.
	Respond(ctx context.Context, userId uuid.UUID, matchId uuid.UUID, req *dto.RespondMatchRequest) (*dto.MatchResponse, error)
}

type matchService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewMatchService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, log logger.ILogger) IMatchService {
	return &matchService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *matchService) mbtiType(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) string {
	answer, err := uow.AnswerRepository().FindByUserAndKey(ctx, userId, mbtiQuestionKey)
	if err != nil || answer == nil {
		return ""
	}
	if answer.Value.Kind != questionnaire.KindChoice {
		return ""
	}
	return normalizeMBTI(answer.Value.Choice)
}

// normalizeMBTI runs a stored code through the single-select grid so
// lowercase codes from older clients still score and unknown codes
// degrade to no-type.
func normalizeMBTI(code string) string {
	var grid questionnaire.MBTIGrid
	grid.Toggle(code)
	return grid.Value().Choice
}

func (s *matchService) compatibility(ctx context.Context, uow unitofwork.UnitOfWork, userA, userB uuid.UUID) int {
	typeA := s.mbtiType(ctx, uow, userA)
	typeB := s.mbtiType(ctx, uow, userB)
	if score, ok := questionnaire.TypeCompatibility(typeA, typeB); ok {
		return score
	}
	// Without both MBTI answers the score stays neutral.
	return 50
}

func (s *matchService) approvedProfile(ctx context.Context, uow unitofwork.UnitOfWork, profileId uuid.UUID) (*entity.Profile, error) {
	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: profileId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}
	if profile.Status != entity.ProfileStatusApproved {
		return nil, errors.New("profile is not approved")
	}
	return profile, nil
}

func (s *matchService) CreateMatch(ctx context.Context, req *dto.CreateMatchRequest) (*dto.MatchResponse, error) {
	if req.ProfileAId == req.ProfileBId {
		return nil, errors.New("cannot match a profile with itself")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	profileA, err := s.approvedProfile(ctx, uow, req.ProfileAId)
	if err != nil {
		return nil, err
	}
	profileB, err := s.approvedProfile(ctx, uow, req.ProfileBId)
	if err != nil {
		return nil, err
	}

	existing, err := uow.MatchRepository().FindPair(ctx, req.ProfileAId, req.ProfileBId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("match already exists for this pair")
	}

	match := &entity.Match{
		Id:                 uuid.New(),
		ProfileAId:         req.ProfileAId,
		ProfileBId:         req.ProfileBId,
		CompatibilityScore: s.compatibility(ctx, uow, profileA.UserId, profileB.UserId),
		Status:             entity.MatchStatusSuggested,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	if err := uow.MatchRepository().Create(ctx, match); err != nil {
		return nil, err
	}

	if err := s.eventPublisher.Publish(ctx, events.NewMatchCreated(match.Id, profileA.UserId, profileB.UserId)); err != nil {
		s.log.Warn("MatchService", "Failed to publish MATCH_CREATED", map[string]interface{}{
			"match_id": match.Id.String(),
			"error":    err.Error(),
		})
	}

	s.log.Info("MatchService", "Match created", map[string]interface{}{"match_id": match.Id.String()})

	resp, err := s.matchResponse(ctx, uow, match, profileA.Id)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *matchService) matchResponse(ctx context.Context, uow unitofwork.UnitOfWork, match *entity.Match, viewerProfileId uuid.UUID) (*dto.MatchResponse, error) {
	otherId := match.OtherSide(viewerProfileId)

	other, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: otherId})
	if err != nil {
		return nil, err
	}
	if other == nil {
		return nil, errors.New("matched profile not found")
	}

	photos, err := uow.PhotoRepository().FindByProfile(ctx, other.Id)
	if err != nil {
		return nil, err
	}

	card := dto.MatchCardDetail{
		ProfileId:   other.Id,
		DisplayName: other.DisplayName,
		MBTIType:    s.mbtiType(ctx, uow, other.UserId),
		Photos:      make([]dto.PhotoResponse, len(photos)),
	}
	for i, p := range photos {
		card.Photos[i] = photoToResponse(p)
	}

	var mine, theirs *bool
	if side := match.SideOf(viewerProfileId); side != nil {
		mine = *side
	}
	if side := match.SideOf(otherId); side != nil {
		theirs = *side
	}

	return &dto.MatchResponse{
		Id:            match.Id,
		Status:        string(match.Status),
		Compatibility: float64(match.CompatibilityScore),
		Other:         card,
		MyDecision:    mine,
		TheirDecision: theirs,
		CreatedAt:     match.CreatedAt,
	}, nil
}

func (s *matchService) GetBoard(ctx context.Context, userId uuid.UUID) (*dto.MatchBoardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindByUserID(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}

	matches, err := uow.MatchRepository().FindForProfile(ctx, profile.Id)
	if err != nil {
		return nil, err
	}

	resp := &dto.MatchBoardResponse{
		Matches: make([]dto.MatchResponse, 0, len(matches)),
		Total:   len(matches),
	}
	for _, m := range matches {
		mr, err := s.matchResponse(ctx, uow, m, profile.Id)
		if err != nil {
			return nil, err
		}
		resp.Matches = append(resp.Matches, *mr)
	}
	return resp, nil
}

func (s *matchService) Respond(ctx context.Context, userId uuid.UUID, matchId uuid.UUID, req *dto.RespondMatchRequest) (*dto.MatchResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindByUserID(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}

	match, err := uow.MatchRepository().FindOne(ctx, specification.ByID{ID: matchId})
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, errors.New("match not found")
	}

	side := match.SideOf(profile.Id)
	if side == nil {
		return nil, errors.New("match does not involve this profile")
	}
	if match.Status != entity.MatchStatusSuggested {
		return nil, errors.New("match is already decided")
	}

	decision := req.Accept
	*side = &decision

	if !req.Accept {
		match.Status = entity.MatchStatusClosed
	} else if match.AAccepted != nil && *match.AAccepted && match.BAccepted != nil && *match.BAccepted {
		match.Status = entity.MatchStatusMutual
	}
	match.UpdatedAt = time.Now()

	if err := uow.MatchRepository().Update(ctx, match); err != nil {
		return nil, err
	}

	if match.Status == entity.MatchStatusMutual {
		otherProfile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: match.OtherSide(profile.Id)})
		if err == nil && otherProfile != nil {
			if err := s.eventPublisher.Publish(ctx, events.NewMatchMutual(match.Id, userId, otherProfile.UserId)); err != nil {
				s.log.Warn("MatchService", "Failed to publish MATCH_MUTUAL", map[string]interface{}{
					"match_id": match.Id.String(),
					"error":    err.Error(),
				})
			}
		}
	}

	return s.matchResponse(ctx, uow, match, profile.Id)
}
