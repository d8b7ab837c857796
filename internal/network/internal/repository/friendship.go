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

package repository

import (
	"context"

	"github.com/ecodeclub/algoknight/internal/network/internal/repository/dao"
)

type FriendshipRepository interface {
	Toggle(ctx context.Context, uid, fid int64) (bool, error)
	FindFriendIDs(ctx context.Context, uid int64) ([]int64, error)
}

type friendshipRepository struct {
	dao dao.FriendshipDAO
}

func NewFriendshipRepository(d dao.FriendshipDAO) FriendshipRepository {
	return &friendshipRepository{dao: d}
}

func (r *friendshipRepository) Toggle(ctx context.Context, uid, fid int64) (bool, error) {
	return r.dao.Toggle(ctx, uid, fid)
}

func (r *friendshipRepository) FindFriendIDs(ctx context.Context, uid int64) ([]int64, error) {
	return r.dao.FindFriendIDs(ctx, uid)
}
