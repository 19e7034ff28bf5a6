// Package model defines the data types exchanged with the storefront backend
// and the structures held by the client-side state holders.
//
// Package model 定义与店面后端交换的数据类型以及客户端状态持有者保存的结构。
package model

import "encoding/json"

// Envelope is the uniform wrapper around every backend response.
// Any response with Success set to false is a failure regardless of
// the transport status code.
//
// Envelope 是每个后端响应的统一包装。
// 任何Success为false的响应都是失败，与传输状态码无关。
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Page is the descriptor returned by every paginated endpoint.
// Page numbers are zero-based.
//
// Page 是每个分页端点返回的描述符。页码从零开始。
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
	Empty         bool  `json:"empty"`
}
