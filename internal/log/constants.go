package log

const (
	KeyAppName            = "app"
	KeyRequestID          = "requestId"
	KeyTraceID            = "traceId"
	KeySpanID             = "spanId"
	KeyProcess            = "process"
	KeyToken              = "token"
	KeyTag                = "tag"
	KeyRequest            = "request"
	KeyRequestBody        = "requestBody"
	KeyRequestHeader      = "requestHeader"
	KeyRequestHost        = "host"
	KeyRequestIp          = "requesterIP"
	KeyRequestMethod      = "requestMethod"
	KeyRequestProcessedAt = "requestProcessedAt"
	KeyRequestURI         = "requestURI"
	KeyRequestURL         = "requestURL"
	KeyConfig             = "config"
	KeyDbURL              = "dbURL"
	KeyCacheKey           = "cacheKey"
	KeySource             = "source"
	KeyPath               = "path"
	KeyProductID          = "productId"
	KeyProductCount       = "productCount"
	KeyCategoryID         = "categoryId"
	KeyCategoryCount      = "categoryCount"
	KeySearch             = "search"
	KeySort               = "sort"
	KeyQuery              = "query"
	KeySubject            = "subject"
	KeySheet              = "sheet"
	KeyRow                = "row"
	KeyRuleCount          = "ruleCount"
	KeyEvent              = "event"
	KeyLimit              = "limit"
	KeyOffset             = "offset"
	KeyDeletedCount       = "deletedCount"
)
