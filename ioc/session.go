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
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/ginx/session/cookie"
	"github.com/ecodeclub/ginx/session/header"
	"github.com/ecodeclub/ginx/session/mixin"
	redissess "github.com/ecodeclub/ginx/session/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

type sessionConfig struct {
	EncryptedKey string        `yaml:"sessionEncryptedKey"`
	Expiration   time.Duration `yaml:"expiration"`
	Cookie       struct {
		Name   string `yaml:"name"`
		Domain string `yaml:"domain"`
		Secure bool   `yaml:"secure"`
	} `yaml:"cookie"`
}

// InitSession token 优先从 header 里面拿，浏览器访问的时候退化到 cookie
func InitSession(cmd redis.Cmdable) session.Provider {
	cfg := sessionConfig{Expiration: 24 * time.Hour}
	cfg.Cookie.Name = "ssid"
	if err := econf.UnmarshalKey("session", &cfg); err != nil {
		panic(err)
	}
	sp := redissess.NewSessionProvider(cmd, cfg.EncryptedKey, cfg.Expiration)
	sp.TokenCarrier = mixin.NewTokenCarrier(header.NewTokenCarrier(), &cookie.TokenCarrier{
		MaxAge:   int(cfg.Expiration.Seconds()),
		Name:     cfg.Cookie.Name,
		Secure:   cfg.Cookie.Secure,
		HttpOnly: true,
		Domain:   cfg.Cookie.Domain,
	})
	return sp
}
