package handler

import (
	"fmt"
	"net/url"

	"huodong/admin/pkg/table"

	"github.com/gofiber/fiber/v2"
)

// sendExportFile 以附件形式下载导出文件，文件名按RFC5987编码
func sendExportFile(c *fiber.Ctx, file *table.ExportFile) error {
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(file.Filename)))
	return c.Send(file.Data)
}
