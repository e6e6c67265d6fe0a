package service

import "context"

// ViewURL 返回音频对象在存储端的直接访问地址，不校验对象存在性.
func (ts *TrackService) ViewURL(key string) string {
	return ts.objectPublicURL(key)
}

// CoverViewURL 返回封面对象在存储端的直接访问地址.
func (ts *TrackService) CoverViewURL(key string) string {
	return ts.objectPublicURL(key)
}

// DownloadURL 返回短期有效的预签名下载地址，响应头强制以附件下载.
func (ts *TrackService) DownloadURL(ctx context.Context, key string) (string, error) {
	return ts.presignDownload(ctx, key)
}
