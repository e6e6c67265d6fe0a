package service

import (
	"context"
	crand "crypto/rand"
	"fmt"
	"math/rand"
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid"
)

const (
	// RouteView 浏览路由前缀.
	RouteView = "view"
	// RouteDownload 下载路由前缀.
	RouteDownload = "download"
	// RouteCoverView 封面浏览路由前缀.
	RouteCoverView = "viewCoverImage"

	// coverRandomDigits 封面键随机后缀位数.
	coverRandomDigits = 6
)

// ulidEntropy 非并发安全，批量上传的 goroutine 共用时需加锁.
var (
	ulidMu      sync.Mutex
	ulidEntropy = ulid.Monotonic(crand.Reader, 0)
)

// newTrackID 生成按时间排序的记录 ID.
func newTrackID(t time.Time) string {
	ulidMu.Lock()
	defer ulidMu.Unlock()

	id := ulid.MustNew(ulid.Timestamp(t), ulidEntropy)

	return id.String()
}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// sanitizeObjectKey 将原始文件名规范化为对象键：连续空白替换为单个下划线.
func sanitizeObjectKey(fileName string) string {
	return whitespaceRuns.ReplaceAllString(fileName, "_")
}

// publicURL 由公共基础地址派生对象的稳定链接，键经过路径转义.
func publicURL(baseURL, route, key string) string {
	return strings.TrimRight(baseURL, "/") + "/" + route + "/" + url.PathEscape(key)
}

// orNull 空值段用字面 null 占位，保持封面键结构稳定.
func orNull(s string) string {
	if s == "" {
		return "null"
	}

	return s
}

// buildCoverKey 构建封面对象键：
// {不含扩展名的对象键}-{语言或null}-{年份或null}-{yyyymmdd+6位随机数}.{扩展名}.
func buildCoverKey(objectKey, language string, year int, now time.Time, ext string) string {
	base := strings.TrimSuffix(objectKey, path.Ext(objectKey))

	yearSeg := ""
	if year > 0 {
		yearSeg = strconv.Itoa(year)
	}

	rnd := rand.New(rand.NewSource(now.UnixNano()))
	suffix := now.Format("20060102") + fmt.Sprintf("%06d", rnd.Intn(1_000_000))

	return fmt.Sprintf("%s-%s-%s-%s.%s", base, orNull(language), orNull(yearSeg), suffix, ext)
}

// coverKeyFromURL 从存储的封面链接还原对象键：取最后一个路径段并反转义.
func coverKeyFromURL(coverURL string) string {
	if coverURL == "" {
		return ""
	}

	seg := coverURL
	if idx := strings.LastIndex(seg, "/"); idx >= 0 {
		seg = seg[idx+1:]
	}

	if unescaped, err := url.PathUnescape(seg); err == nil {
		return unescaped
	}

	return seg
}

// objectPublicURL 对象在存储端的直接访问地址（用于 302 重定向）.
func (ts *TrackService) objectPublicURL(key string) string {
	cfg := ts.s3Client.GetConfig()
	return fmt.Sprintf("%s/%s/%s", cfg.GetEndpointURL(), cfg.Bucket, url.PathEscape(key))
}

// bucket 当前配置的存储桶.
func (ts *TrackService) bucket() string {
	return ts.s3Client.GetConfig().Bucket
}

// presignDownload 生成带附件下载头的预签名 GET URL.
func (ts *TrackService) presignDownload(ctx context.Context, key string) (string, error) {
	params := url.Values{}
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", key))

	expiry := ts.upload.DownloadExpiry()

	urlObj, err := ts.s3Client.PresignedGetObject(ctx, ts.bucket(), key, expiry, params)
	if err != nil {
		return "", fmt.Errorf("presign get for %s: %w", key, err)
	}

	return urlObj.String(), nil
}
