package http

import (
	"context"
	"fmt"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/adapter/http/mapper"
	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

type ColumnsService struct {
	client *Client
}

func NewColumnsService(client *Client) *ColumnsService {
	return &ColumnsService{client: client}
}

func (s *ColumnsService) FetchColumns(ctx context.Context) ([]domain.Column, error) {
	var items []dto.Column
	if err := s.client.Get(ctx, "/columns", &items); err != nil {
		return nil, err
	}
	return mapper.ToColumns(items), nil
}

func (s *ColumnsService) CreateColumn(ctx context.Context, column domain.Column) (domain.Column, error) {
	body := mapper.FromColumn(column)
	body.ID = 0

	var created dto.Column
	if err := s.client.Post(ctx, "/columns", body, &created); err != nil {
		return domain.Column{}, err
	}
	return mapper.ToColumn(created), nil
}

func (s *ColumnsService) UpdateColumn(ctx context.Context, column domain.Column) (domain.Column, error) {
	var updated *dto.Column
	if err := s.client.Put(ctx, fmt.Sprintf("/columns/%d", column.ID), mapper.FromColumn(column), &updated); err != nil {
		return domain.Column{}, err
	}
	if updated == nil {
		return column, nil
	}
	return mapper.ToColumn(*updated), nil
}

func (s *ColumnsService) DeleteColumn(ctx context.Context, id uint64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/columns/%d", id))
}

var _ ports.ColumnTransport = (*ColumnsService)(nil)
