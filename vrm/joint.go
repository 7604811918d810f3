package vrm

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

func readMatrix(data []byte) [16]float32 {
	var mat [16]float32
	for i := 0; i < 16; i++ {
		d := binary.LittleEndian.Uint32(data[i*4 : i*4+4])
		mat[i] = math.Float32frombits(d)
	}
	return mat
}

func writeMatrix(data []byte, mat [16]float32) {
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(data[i*4:i*4+4], math.Float32bits(mat[i]))
	}
}

// FixJointMatrix bakes node rotations into their children and reduces the
// inverse bind matrices to pure translations. Some importers require rest
// pose joints without rotation.
func (doc *Document) FixJointMatrix() {
	for _, skin := range doc.Skins {
		if skin.InverseBindMatrices != nil {
			accessor := doc.Accessors[*skin.InverseBindMatrices]
			if accessor.BufferView != nil {
				bufferView := doc.BufferViews[*accessor.BufferView]
				// TODO: support sparse data.
				data := doc.Buffers[bufferView.Buffer].Data
				if len(data) == 0 {
					continue
				}
				for i := range skin.Joints {
					// fix inverseBindMatrix
					offset := bufferView.ByteOffset + uint32(i)*64
					mat := readMatrix(data[offset : offset+64])

					x := mat[0]*mat[12] + mat[1]*mat[13] + mat[2]*mat[14]
					y := mat[4]*mat[12] + mat[5]*mat[13] + mat[6]*mat[14]
					z := mat[8]*mat[12] + mat[9]*mat[13] + mat[10]*mat[14]
					writeMatrix(data[offset:offset+64], [16]float32{
						1, 0, 0, 0,
						0, 1, 0, 0,
						0, 0, 1, 0,
						x, y, z, 1,
					})
				}
			}
		}
	}

	// TODO: check node dependency
	for i := 0; i < 10; i++ {
		fixed := 0
		for _, node := range doc.Nodes {
			if node.Rotation == [4]float64{0, 0, 0, 1} || node.Rotation == [4]float64{} || node.Skin != nil {
				continue
			}
			fixed++
			r := node.Rotation
			a := mgl64.Quat{W: r[3], V: mgl64.Vec3{r[0], r[1], r[2]}}
			node.Rotation = [4]float64{0, 0, 0, 1}
			for _, c := range node.Children {
				child := doc.Nodes[c]

				p := a.Rotate(mgl64.Vec3(child.Translation))
				child.Translation = [3]float64(p)

				rb := child.Rotation
				if rb == ([4]float64{}) {
					rb = [4]float64{0, 0, 0, 1}
				}
				b := mgl64.Quat{W: rb[3], V: mgl64.Vec3{rb[0], rb[1], rb[2]}}
				q := a.Mul(b)
				child.Rotation = [4]float64{q.V[0], q.V[1], q.V[2], q.W}
			}
		}
		if fixed == 0 {
			break
		}
	}
}

// FixJointComponentType widens byte JOINTS_0 attributes to uint16.
func (doc *Document) FixJointComponentType() {
	fixedbuffer := map[uint32]bool{}
	for _, mesh := range doc.Meshes {
		for _, primitiv := range mesh.Primitives {
			for k, attr := range primitiv.Attributes {
				accessor := doc.Accessors[attr]
				if k == "JOINTS_0" && doc.Accessors[attr].ComponentType == 2 { // byte
					bufferView := doc.BufferViews[*accessor.BufferView]
					buffer := doc.Buffers[bufferView.Buffer]

					accessor.ComponentType = 4
					if fixedbuffer[*accessor.BufferView] {
						continue
					}
					fixedbuffer[*accessor.BufferView] = true

					// byte to uint16
					src := buffer.Data[bufferView.ByteOffset : bufferView.ByteOffset+bufferView.ByteLength]
					dst := make([]byte, bufferView.ByteLength*2)
					for i, b := range src {
						binary.LittleEndian.PutUint16(dst[i*2:i*2+2], uint16(b))
					}

					bufferView.ByteLength *= 2
					bufferView.ByteStride *= 2
					bufferView.ByteOffset = uint32(len(buffer.Data))

					buffer.Data = append(buffer.Data, dst...)
					buffer.ByteLength += uint32(len(dst))
				}
			}
		}
	}
}
