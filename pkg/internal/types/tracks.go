// Package types 定义 HTTP 层的请求与响应结构.
package types

import "github.com/yeisme/tunevault/pkg/internal/model"

// UploadTrackFailure 单个文件上传失败结果.
type UploadTrackFailure struct {
	FileName string `json:"file_name"`
	Error    string `json:"error"`
}

// UploadTracksResponse 批量上传响应.
type UploadTracksResponse struct {
	Message  string               `json:"message"`
	Files    []model.TrackRecord  `json:"files"`
	Failures []UploadTrackFailure `json:"failures,omitempty"`
	Total    int                  `json:"total"`
	Failed   int                  `json:"failed"`
}

// ListTracksResponse 文件列表响应.
type ListTracksResponse struct {
	Files []model.TrackRecord `json:"files"`
	Total int                 `json:"total"`
}

// DeleteTrackResponse 删除响应.
type DeleteTrackResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
