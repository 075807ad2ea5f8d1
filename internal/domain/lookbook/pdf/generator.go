package pdf

import "github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/lookbook"

type Generator interface {
	Generate(lb lookbook.Lookbook) ([]byte, error)
}
