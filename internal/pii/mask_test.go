package pii

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask_Email(t *testing.T) {
	assert.Equal(t, "연락처: [EMAIL]", Mask("연락처: dev.kim+work@example.co.kr"))
}

func TestMask_URL(t *testing.T) {
	assert.Equal(t, "블로그 [URL] 운영", Mask("블로그 https://blog.example.com/posts/1 운영"))
	assert.Equal(t, "[URL]", Mask("www.example.com/portfolio"))
}

func TestMask_Phone(t *testing.T) {
	assert.Equal(t, "전화 [PHONE]", Mask("전화 010-1234-5678"))

	masked := Mask("전화 +82 10-1234-5678")
	assert.Contains(t, masked, "[PHONE]")
	assert.NotContains(t, masked, "1234-5678")
}

func TestMask_MixedText(t *testing.T) {
	input := "문의는 kim@example.com 또는 010-1234-5678, 포트폴리오는 https://example.com"
	masked := Mask(input)
	assert.NotContains(t, masked, "kim@example.com")
	assert.NotContains(t, masked, "010-1234-5678")
	assert.NotContains(t, masked, "https://example.com")
	assert.Contains(t, masked, "[EMAIL]")
	assert.Contains(t, masked, "[PHONE]")
	assert.Contains(t, masked, "[URL]")
}

func TestMask_PlainTextUntouched(t *testing.T) {
	input := "Spring Boot 기반 재고 시스템을 개발했습니다"
	assert.Equal(t, input, Mask(input))
}
