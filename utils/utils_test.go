package utils

import (
	"testing"

	"nextjs_to_go/config"
)

func testConfig() config.Config {
	return config.Config{
		JWTConfig: config.JWTConfig{
			SecretKey:       "unit-test-secret",
			AccessTokenTTL:  2,
			RefreshTokenTTL: 24,
		},
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	cfg := testConfig()

	accessToken, refreshToken, err := GenerateTokens(42, "seller", cfg)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatal("令牌不能为空")
	}

	token, claims, err := ParseToken(accessToken, cfg)
	if err != nil {
		t.Fatalf("解析令牌失败: %v", err)
	}
	if !token.Valid {
		t.Error("令牌应当有效")
	}
	if claims.Subject != "42" {
		t.Errorf("用户ID错误: 期望42, 实际%s", claims.Subject)
	}
	if claims.Role != "seller" {
		t.Errorf("角色错误: 期望seller, 实际%s", claims.Role)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	cfg := testConfig()

	accessToken, _, err := GenerateTokens(1, "customer", cfg)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	wrongCfg := cfg
	wrongCfg.JWTConfig.SecretKey = "another-secret"
	if _, _, err := ParseToken(accessToken, wrongCfg); err == nil {
		t.Error("错误密钥解析应当失败")
	}
}

func TestRefreshAccessToken(t *testing.T) {
	cfg := testConfig()

	_, refreshToken, err := GenerateTokens(7, "admin", cfg)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	newAccess, err := RefreshAccessToken(refreshToken, cfg)
	if err != nil {
		t.Fatalf("刷新访问令牌失败: %v", err)
	}

	_, claims, err := ParseToken(newAccess, cfg)
	if err != nil {
		t.Fatalf("解析新令牌失败: %v", err)
	}
	if claims.Subject != "7" || claims.Role != "admin" {
		t.Errorf("新令牌声明错误: subject=%s, role=%s", claims.Subject, claims.Role)
	}
}

func TestPagination(t *testing.T) {
	cases := []struct {
		page, size     int
		wantOffset     int
		wantSize       int
	}{
		{1, 10, 0, 10},
		{3, 20, 40, 20},
		{0, 0, 0, 10},    // 非法入参取默认值
		{-1, -5, 0, 10},  // 负数取默认值
		{2, 100, 50, 50}, // 每页上限50
	}

	for _, tc := range cases {
		offset, size := Pagination(tc.page, tc.size)
		if offset != tc.wantOffset || size != tc.wantSize {
			t.Errorf("Pagination(%d, %d) = (%d, %d), 期望(%d, %d)",
				tc.page, tc.size, offset, size, tc.wantOffset, tc.wantSize)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 10, 10},
		{5, 0, 0}, // 非法每页条数
	}

	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.pageSize); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, 期望%d", tc.total, tc.pageSize, got, tc.want)
		}
	}
}

func TestFormatParseDateTime(t *testing.T) {
	formatted := "2026-01-15 08:30:00"

	parsed, err := ParseDateTime(formatted)
	if err != nil {
		t.Fatalf("解析时间失败: %v", err)
	}
	if FormatDateTime(parsed) != formatted {
		t.Errorf("时间格式化不一致: %s", FormatDateTime(parsed))
	}
}
