package request

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	requesterrors "leave-portal/internal/request/errors"
	"leave-portal/internal/shared/apperror"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreatePayload) (Response, error)
	GetAll(ctx context.Context, employeeID string) ([]Response, error)
	GetByID(ctx context.Context, id string) (Response, error)
	UpdateStatus(ctx context.Context, id, status string) (Response, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePayload) (Response, error) {
	s.logger.Debug("create request requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("from_date", req.FromDate),
		zap.String("to_date", req.ToDate),
	)

	from, to, err := validateCreatePayload(req, time.Now().UTC())
	if err != nil {
		s.logger.Warn("create request validation failed", zap.Error(err))
		return Response{}, err
	}

	existing, err := s.repo.FindDuplicate(ctx, req.EmployeeID, from, to)
	if err != nil {
		s.logger.Error("create request duplicate check failed", zap.Error(err))
		return Response{}, apperror.Wrap(err, apperror.CodeInternalError,
			"Failed to create request", http.StatusInternalServerError)
	}
	if existing != nil {
		s.logger.Warn("create request duplicate detected",
			zap.String("employee_id", req.EmployeeID),
			zap.String("from_date", req.FromDate),
			zap.String("to_date", req.ToDate),
			zap.String("existing_status", existing.Status),
		)
		return Response{}, requesterrors.DuplicateRequest(existing.Status)
	}

	status := req.Status
	if status == "" {
		status = StatusPending
	}
	row := &Request{
		Name:       req.Name,
		EmployeeID: req.EmployeeID,
		Email:      req.Email,
		Project:    req.Project,
		Manager:    req.Manager,
		Location:   req.Location,
		FromDate:   from,
		ToDate:     to,
		Reason:     req.Reason,
		Status:     status,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("create request persist failed", zap.Error(err))
		return Response{}, apperror.Wrap(err, apperror.CodeInternalError,
			"Failed to create request", http.StatusInternalServerError)
	}

	s.logger.Info("create request success",
		zap.Int64("request_id", row.ID),
		zap.String("employee_id", row.EmployeeID),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, employeeID string) ([]Response, error) {
	rows, err := s.repo.FindAll(ctx, employeeID)
	if err != nil {
		s.logger.Error("list requests failed", zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeInternalError,
			"Failed to fetch requests", http.StatusInternalServerError)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (Response, error) {
	requestID, err := parseRequestID(id)
	if err != nil {
		return Response{}, err
	}

	row, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Response{}, requesterrors.ErrRequestNotFound
		}
		s.logger.Error("get request failed", zap.Int64("request_id", requestID), zap.Error(err))
		return Response{}, apperror.Wrap(err, apperror.CodeInternalError,
			"Failed to fetch request", http.StatusInternalServerError)
	}
	return mapToResponse(*row), nil
}

func (s *service) UpdateStatus(ctx context.Context, id, status string) (Response, error) {
	s.logger.Debug("update request status requested",
		zap.String("request_id", id),
		zap.String("target_status", status),
	)

	requestID, err := parseRequestID(id)
	if err != nil {
		return Response{}, err
	}
	if !isValidStatus(status) {
		s.logger.Warn("update request status invalid",
			zap.Int64("request_id", requestID),
			zap.String("target_status", status),
		)
		return Response{}, requesterrors.ErrInvalidStatus
	}

	// Any status may overwrite any other; review decisions are revisable.
	row, err := s.repo.UpdateStatus(ctx, requestID, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Response{}, requesterrors.ErrRequestNotFound
		}
		s.logger.Error("update request status failed",
			zap.Int64("request_id", requestID),
			zap.Error(err),
		)
		return Response{}, apperror.Wrap(err, apperror.CodeInternalError,
			"Failed to update request", http.StatusInternalServerError)
	}

	s.logger.Info("update request status success",
		zap.Int64("request_id", requestID),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

func parseRequestID(id string) (int64, error) {
	requestID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, requesterrors.ErrRequestNotFound
	}
	return requestID, nil
}

func mapToResponse(r Request) Response {
	resp := Response{
		ID:         r.ID,
		Name:       r.Name,
		EmployeeID: r.EmployeeID,
		Email:      r.Email,
		Project:    r.Project,
		Manager:    r.Manager,
		Location:   r.Location,
		FromDate:   r.FromDate.Format("2006-01-02"),
		ToDate:     r.ToDate.Format("2006-01-02"),
		Reason:     r.Reason,
		Status:     r.Status,
	}
	if r.SubmittedAt != nil {
		v := r.SubmittedAt.Format(time.RFC3339)
		resp.SubmittedAt = &v
	}
	return resp
}

func mapToListResponse(rows []Request) []Response {
	resp := make([]Response, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp
}
