package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStagingKey(t *testing.T) {
	key := StagingKey(".jpg")

	// Staged uploads phải nằm dưới prefix mà scheduled sweep quét
	assert.True(t, strings.HasPrefix(key, StagingPrefix))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	// Key phải unique per call để uploads đồng thời không ghi đè nhau
	assert.NotEqual(t, key, StagingKey(".jpg"))

	// Extension rỗng vẫn cho key hợp lệ
	bare := StagingKey("")
	assert.True(t, strings.HasPrefix(bare, StagingPrefix))
	assert.NotEqual(t, StagingPrefix, bare)
}
