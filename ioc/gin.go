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
	"net/http"
	"strings"

	"github.com/ecodeclub/algoknight/internal/network"
	"github.com/ecodeclub/algoknight/internal/pkg/middleware"
	"github.com/ecodeclub/algoknight/internal/smartsheet"
	"github.com/ecodeclub/algoknight/internal/tracker"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	hooks []middleware.LogoutHook,
	trackerHdl *tracker.Handler,
	networkHdl *network.Handler,
	sheetHdl *smartsheet.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder("algoknight", "web").Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token", "X-Session-Expired"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost")
		},
	}))
	res.Use(middleware.NewLogoutHookBuilder(hooks...).Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	trackerHdl.PublicRoutes(res.Engine)
	networkHdl.PublicRoutes(res.Engine)
	sheetHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	trackerHdl.PrivateRoutes(res.Engine)
	networkHdl.PrivateRoutes(res.Engine)
	sheetHdl.PrivateRoutes(res.Engine)
	return res
}

// initLogoutHooks 进程启动的时候注册，请求处理过程中不再变化
func initLogoutHooks() []middleware.LogoutHook {
	return []middleware.LogoutHook{
		middleware.NewClearTokenHook(),
	}
}
