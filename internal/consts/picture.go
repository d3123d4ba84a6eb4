package consts

const (
	// PictureCanvasSize 头像统一裁剪后的边长（像素），宽高相同
	PictureCanvasSize = 200

	// PictureContentType 归一化后的头像统一编码为 JPEG
	PictureContentType = "image/jpeg"

	// PictureFormField multipart 表单中头像文件的字段名
	PictureFormField = "profile_picture"
)
