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

package testioc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/ecodeclub/algoknight/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var (
	db         *egorm.Component
	dbInitOnce sync.Once
	configOnce sync.Once
)

// InitDB 和线上一样带 tracing 插件，依赖 docker compose 启动的 MySQL
func InitDB() *egorm.Component {
	dbInitOnce.Do(func() {
		mustLoadConfig()
		db = ioc.InitDB()
	})
	return db
}

func mustLoadConfig() {
	configOnce.Do(func() {
		if err := loadConfig(); err != nil {
			panic(err)
		}
	})
}

// loadConfig 测试运行在包目录下，要往上找到 go.mod 所在的目录
func loadConfig() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	for {
		if _, err = os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return errors.New("没有找到 go.mod")
		}
		dir = parent
	}
	content, err := os.ReadFile(filepath.Join(dir, "config", "config.yaml"))
	if err != nil {
		return err
	}
	return econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
}
