package errcode

// Error code conventions:
// - 0: no error
// - 40xx: user-recoverable conditions; editing always continues
// - 5xxx: system errors (the failing operation is aborted)
const (
	OK                 = 0
	ResourceMissing    = 4004
	ExportBlocked      = 4031
	RendererNotReady   = 4032
	AIGenerationFailed = 4033
	DownloadFailed     = 4034
	SystemError        = 5000
)
