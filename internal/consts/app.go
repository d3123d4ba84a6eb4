package consts

const (
	ApplicationName    = "Project Registration Server"
	ApplicationVersion = "v1.0.0"
)
