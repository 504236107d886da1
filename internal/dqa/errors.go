package dqa

import "errors"

var (
	// ErrUnknownTopic 请求了未注册的问题主题
	ErrUnknownTopic = errors.New("unknown question topic")
	// ErrUnknownAction 调度器控制动作不合法
	ErrUnknownAction = errors.New("unknown scheduler action")
	// ErrNoHospitals 活跃医院池为空，无法生成
	ErrNoHospitals = errors.New("no active hospitals available")
	// ErrCountOutOfRange 批量生成数量超出允许范围
	ErrCountOutOfRange = errors.New("count must be between 1 and 100")
	// ErrHospitalNotFound 医院不存在
	ErrHospitalNotFound = errors.New("hospital not found")
)
