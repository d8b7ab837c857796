// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ecodeclub/algoknight/internal/network/internal/domain"
	"github.com/ecodeclub/algoknight/internal/network/internal/repository"
	"github.com/ecodeclub/algoknight/internal/tracker"
	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrSelfConnection = errors.New("不能添加自己为好友")
	ErrInvalidFriend  = errors.New("非法的好友 ID")
)

// SearchLimit 一次搜索最多匹配的账号数量
const SearchLimit = 50

//go:generate mockgen -source=./network.go -destination=../../mocks/network.mock.go -package=networkmocks Service
type Service interface {
	Toggle(ctx context.Context, uid, fid int64) (bool, error)
	// FriendIDs 只包含一度好友
	FriendIDs(ctx context.Context, uid int64) ([]int64, error)
	Connections(ctx context.Context, uid int64) ([]domain.Connection, error)
	// Search 按照各平台账号模糊搜索，结果不包含自己和已经添加的好友
	Search(ctx context.Context, uid int64, keyword string) ([]domain.Connection, error)
}

type service struct {
	repo       repository.FriendshipRepository
	trackerSvc tracker.Service
}

func NewService(repo repository.FriendshipRepository, trackerSvc tracker.Service) Service {
	return &service{
		repo:       repo,
		trackerSvc: trackerSvc,
	}
}

func (s *service) Toggle(ctx context.Context, uid, fid int64) (bool, error) {
	if fid <= 0 {
		return false, ErrInvalidFriend
	}
	if uid == fid {
		return false, ErrSelfConnection
	}
	return s.repo.Toggle(ctx, uid, fid)
}

func (s *service) FriendIDs(ctx context.Context, uid int64) ([]int64, error) {
	return s.repo.FindFriendIDs(ctx, uid)
}

func (s *service) Connections(ctx context.Context, uid int64) ([]domain.Connection, error) {
	fids, err := s.repo.FindFriendIDs(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.connectionsOf(ctx, fids)
}

func (s *service) Search(ctx context.Context, uid int64, keyword string) ([]domain.Connection, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []domain.Connection{}, nil
	}
	handles, err := s.trackerSvc.SearchHandles(ctx, keyword, SearchLimit)
	if err != nil {
		return nil, err
	}
	fids, err := s.repo.FindFriendIDs(ctx, uid)
	if err != nil {
		return nil, err
	}
	excluded := make(map[int64]struct{}, len(fids)+1)
	excluded[uid] = struct{}{}
	for _, fid := range fids {
		excluded[fid] = struct{}{}
	}
	uids := make([]int64, 0, len(handles))
	for _, h := range handles {
		if _, ok := excluded[h.Uid]; ok {
			continue
		}
		excluded[h.Uid] = struct{}{}
		uids = append(uids, h.Uid)
	}
	return s.connectionsOf(ctx, uids)
}

// connectionsOf 按照 uids 的顺序组装，每个平台都会有一项
func (s *service) connectionsOf(ctx context.Context, uids []int64) ([]domain.Connection, error) {
	if len(uids) == 0 {
		return []domain.Connection{}, nil
	}
	profiles, err := s.trackerSvc.Profiles(ctx, uids)
	if err != nil {
		return nil, err
	}
	return slice.Map(uids, func(idx int, uid int64) domain.Connection {
		ps := profiles[uid]
		return domain.Connection{
			Uid: uid,
			Handles: slice.Map(tracker.Platforms(), func(idx int, platform tracker.Platform) domain.PlatformHandle {
				return s.handleOf(ps, platform)
			}),
		}
	}), nil
}

func (s *service) handleOf(ps []tracker.PlatformProfile, platform tracker.Platform) domain.PlatformHandle {
	res := domain.PlatformHandle{Platform: platform.ToString()}
	p, ok := slice.Find(ps, func(src tracker.PlatformProfile) bool {
		return src.Platform == platform
	})
	if !ok {
		return res
	}
	res.Handle = p.Handle
	if r, ok := p.LatestRating(); ok {
		res.Rating = &r
	}
	return res
}
