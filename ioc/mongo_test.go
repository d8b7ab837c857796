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

package ioc

import (
	"testing"

	"github.com/gotomicro/ego/core/econf"
	"github.com/stretchr/testify/assert"
)

func TestInitMongoDB(t *testing.T) {
	testCases := []struct {
		name    string
		storage string
		uri     string
	}{
		{
			// 地址不可达也不会去连接
			name:    "存储为 mysql",
			storage: "mysql",
			uri:     "mongodb://127.0.0.1:1",
		},
		{
			name:    "没有配置存储",
			storage: "",
			uri:     "mongodb://127.0.0.1:1",
		},
		{
			name:    "存储为 mongo 但是没有配置 uri",
			storage: "mongo",
			uri:     "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			econf.Set("tracker", map[string]any{"storage": tc.storage})
			econf.Set("mongo", map[string]any{"uri": tc.uri, "database": "algoknight"})
			assert.NotPanics(t, func() {
				assert.Nil(t, InitMongoDB())
			})
		})
	}
}
