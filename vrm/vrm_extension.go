package vrm

import (
	"fmt"
	"strings"

	"github.com/qmuntal/gltf"
)

type Document gltf.Document

// VRM returns the 0.x extension object, creating it if absent.
func (doc *Document) VRM() *VRM {
	if ext, ok := doc.Extensions[ExtensionName].(*VRM); ok {
		return ext
	}
	ext := NewVRM()
	doc.setExtension(ExtensionName, ext)
	return ext
}

// VRM1 returns the 1.0 core extension object, creating it if absent.
func (doc *Document) VRM1() *VRM1 {
	if ext, ok := doc.Extensions[VRM1ExtensionName].(*VRM1); ok {
		return ext
	}
	ext := NewVRM1()
	doc.setExtension(VRM1ExtensionName, ext)
	return ext
}

// SpringBone returns the 1.0 spring bone extension object, creating it if
// absent.
func (doc *Document) SpringBone() *SpringBone {
	if ext, ok := doc.Extensions[SpringBoneExtensionName].(*SpringBone); ok {
		return ext
	}
	ext := NewSpringBone()
	doc.setExtension(SpringBoneExtensionName, ext)
	return ext
}

func (doc *Document) setExtension(extname string, ext interface{}) {
	if doc.Extensions == nil {
		doc.Extensions = gltf.Extensions{}
	}
	doc.Extensions[extname] = ext
	if !doc.IsExtentionUsed(extname) {
		doc.ExtensionsUsed = append(doc.ExtensionsUsed, extname)
	}
}

func (doc *Document) IsExtentionUsed(extname string) bool {
	for _, ex := range doc.ExtensionsUsed {
		if ex == extname {
			return true
		}
	}
	return false
}

// IsVRM1 reports whether the document carries 1.0 extensions. A document
// with neither extension is treated as 0.x.
func (doc *Document) IsVRM1() bool {
	_, ok := doc.Extensions[VRM1ExtensionName].(*VRM1)
	return ok
}

func (doc *Document) ValidateBones() error {
	errorBones := doc.VRM().CheckRequiredBones()
	if len(errorBones) > 0 {
		return fmt.Errorf("bone error, missing bones: %v", strings.Join(errorBones, ","))
	}
	return nil
}
