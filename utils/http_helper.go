package utils

import (
	"encoding/json"
	"net/http"

	"influencer_match/models"
)

// WriteFormattedJSON 格式化JSON输出，使其更易读
func WriteFormattedJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	encoder.Encode(data)
}

// WriteSuccessResponse 写入成功响应
func WriteSuccessResponse(w http.ResponseWriter, data interface{}) {
	WriteFormattedJSON(w, models.NewSuccessResponse(data))
}

// WriteErrorResponse 写入错误响应
func WriteErrorResponse(w http.ResponseWriter, code int, data interface{}) {
	WriteFormattedJSON(w, models.NewErrorResponse(code, data))
}

// WriteCustomErrorResponse 写入自定义错误消息的响应
func WriteCustomErrorResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	WriteFormattedJSON(w, models.NewCustomErrorResponse(code, message, data))
}

// DecodeJSONBody 解析请求体，失败时直接写入参数错误响应
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteCustomErrorResponse(w, models.CodeInvalidParams, "无法解析请求体: "+err.Error(), map[string]interface{}{})
		return false
	}
	return true
}

// ValidateUsername 验证影响者用户名参数
func ValidateUsername(w http.ResponseWriter, username string) bool {
	if username == "" {
		WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{
			"param": "influencer_username",
		})
		return false
	}
	return true
}
