package models

// 响应码定义
const (
	// 成功
	CodeSuccess = 0

	// 客户端错误 (1000-1999)
	CodeInvalidParams       = 1000 // 无效的参数
	CodeMissingParams       = 1001 // 缺少必要参数
	CodeInfluencerNotFound  = 1002 // 影响者不存在
	CodeUnsupportedMetric   = 1003 // 不支持的指标名称
	CodeSeriesTooShort      = 1004 // 时间序列数据点不足
	CodeEmptyRecommendation = 1005 // 没有可推荐的数据

	// 服务端错误 (2000-2999)
	CodeServerError     = 2000 // 服务器内部错误
	CodeCatalogError    = 2001 // 目录数据错误
	CodeMatchGenError   = 2002 // 匹配计算错误
	CodeDatabaseError   = 2003 // 数据库错误
	CodeForecastError   = 2004 // 趋势预测错误
	CodeEngineNotReady  = 2005 // 匹配引擎未就绪
)

// 错误码对应的消息
var CodeMessages = map[int]string{
	CodeSuccess:             "success",
	CodeInvalidParams:       "无效的参数",
	CodeMissingParams:       "缺少必要参数",
	CodeInfluencerNotFound:  "影响者不存在",
	CodeUnsupportedMetric:   "不支持的指标名称",
	CodeSeriesTooShort:      "时间序列数据点不足",
	CodeEmptyRecommendation: "没有可推荐的数据",
	CodeServerError:         "服务器内部错误",
	CodeCatalogError:        "目录数据错误",
	CodeMatchGenError:       "匹配计算错误",
	CodeDatabaseError:       "数据库错误",
	CodeForecastError:       "趋势预测错误",
	CodeEngineNotReady:      "匹配引擎未就绪",
}

// APIResponse 统一响应结构
type APIResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// NewSuccessResponse 创建成功响应
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Code:    CodeSuccess,
		Message: CodeMessages[CodeSuccess],
		Data:    data,
	}
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(code int, data interface{}) APIResponse {
	message, exists := CodeMessages[code]
	if !exists {
		message = "未知错误"
	}
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// NewCustomErrorResponse 创建自定义错误消息的响应
func NewCustomErrorResponse(code int, message string, data interface{}) APIResponse {
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}
