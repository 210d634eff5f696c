package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// 全量路由注册不应panic，且未携带令牌的请求在进入处理器前就被认证中间件拦截
func TestInitRoutesRejectsUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	InitRoutes(router)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/orders/pending-pickups", http.StatusUnauthorized},
		{"PATCH", "/orders/bulk", http.StatusUnauthorized},
		{"POST", "/returns/", http.StatusUnauthorized},
		{"POST", "/payouts/generate", http.StatusUnauthorized},
		{"GET", "/api/health/", http.StatusOK},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, tc.path, nil)
		router.ServeHTTP(w, req)

		if w.Code != tc.want {
			t.Errorf("%s %s 状态码错误: 期望%d, 实际%d", tc.method, tc.path, tc.want, w.Code)
		}
	}
}
