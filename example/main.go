// Example is a minimal image viewer demonstrating wheel zoom and drag pan.
//
// Usage:
//
//	go run ./example/ [-config settings.yaml] [image.png]
//
// Without an image argument a generated checkerboard is shown. Middle-drag
// pans, the wheel zooms into the cursor, right-click resets the view, and
// the +/- keys adjust the magnification step.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	xdraw "golang.org/x/image/draw"

	"github.com/danyalejandro/imgzoompan"
	"github.com/danyalejandro/imgzoompan/backend/glfwhost"
)

const (
	windowWidth  = 1024
	windowHeight = 768
	windowTitle  = "imgzoompan example"

	// Rasters larger than this are downscaled before upload so the demo
	// stays within conservative texture limits.
	maxTextureSize = 4096
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// viewer is the host side of the controller: it owns the texture, the
// current view extent, and the window geometry.
type viewer struct {
	*glfwhost.Cursors

	window *glfw.Window
	imgW   float64
	imgH   float64
	view   imgzoompan.Extent
}

// HitTest resolves the raster under the pointer. The demo fills the whole
// window with the image, so any position inside the current view resolves.
func (v *viewer) HitTest(pos imgzoompan.Vec2) (imgzoompan.Extent, bool) {
	if !v.view.Contains(pos) {
		return imgzoompan.Extent{}, false
	}
	return v.view, true
}

// ApplyExtent is the redraw sink; the render loop picks up the new view on
// the next frame.
func (v *viewer) ApplyExtent(ext imgzoompan.Extent) {
	v.view = ext
}

// ContentRect implements glfwhost.Viewer: the image spans the framebuffer.
func (v *viewer) ContentRect() (x, y, w, h float64) {
	fw, fh := v.window.GetFramebufferSize()
	return 0, 0, float64(fw), float64(fh)
}

func run() error {
	configPath := flag.String("config", "", "YAML settings file")
	flag.Parse()

	img, err := loadImage(flag.Arg(0))
	if err != nil {
		return err
	}
	imgW := float64(img.Bounds().Dx())
	imgH := float64(img.Bounds().Dy())

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	tex := uploadTexture(img)
	defer gl.DeleteTextures(1, &tex)

	baseline := imgzoompan.Extent{XMin: 0, XMax: imgW, YMin: 0, YMax: imgH}
	v := &viewer{
		Cursors: glfwhost.NewCursors(window),
		window:  window,
		imgW:    imgW,
		imgH:    imgH,
		view:    baseline,
	}
	defer v.Destroy()

	opts := []imgzoompan.Option{
		imgzoompan.WithImageSize(imgW, imgH),
		imgzoompan.WithMagnify(1.2),
	}
	if *configPath != "" {
		fileOpts, err := imgzoompan.LoadOptions(*configPath)
		if err != nil {
			return err
		}
		opts = append(opts, fileOpts...)
	}

	ctrl, err := imgzoompan.New(v, baseline, opts...)
	if err != nil {
		return err
	}

	adapter := glfwhost.Attach(window, ctrl, v)

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyEqual, glfw.KeyKPAdd:
			ctrl.BumpMagnify(1)
		case glfw.KeyMinus, glfw.KeyKPSubtract:
			ctrl.BumpMagnify(-1)
		case glfw.KeyR:
			ctrl.Reset()
		}
	})

	for !window.ShouldClose() {
		glfw.PollEvents()
		if err := adapter.Err(); err != nil {
			return err
		}

		fw, fh := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fw), int32(fh))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		drawView(tex, v.view, imgW, imgH)

		window.SetTitle(fmt.Sprintf("%s — %.0fx%.0f of %.0fx%.0f",
			windowTitle, v.view.Width(), v.view.Height(), imgW, imgH))
		window.SwapBuffers()
	}

	return nil
}

// drawView renders the current extent as a window-filling textured quad.
func drawView(tex uint32, view imgzoompan.Extent, imgW, imgH float64) {
	u0 := float32(view.XMin / imgW)
	u1 := float32(view.XMax / imgW)
	t0 := float32(view.YMin / imgH)
	t1 := float32(view.YMax / imgH)

	gl.Enable(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, 1, 1, 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	gl.Begin(gl.QUADS)
	gl.TexCoord2f(u0, t0)
	gl.Vertex2f(0, 0)
	gl.TexCoord2f(u1, t0)
	gl.Vertex2f(1, 0)
	gl.TexCoord2f(u1, t1)
	gl.Vertex2f(1, 1)
	gl.TexCoord2f(u0, t1)
	gl.Vertex2f(0, 1)
	gl.End()

	gl.Disable(gl.TEXTURE_2D)
}

// loadImage decodes the image at path, or synthesizes a checkerboard when
// path is empty. Oversized rasters are downscaled to maxTextureSize.
func loadImage(path string) (*image.RGBA, error) {
	if path == "" {
		return checkerboard(1600, 1200, 50), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxTextureSize || h > maxTextureSize {
		scale := float64(maxTextureSize) / float64(max(w, h))
		w = int(float64(w) * scale)
		h = int(float64(h) * scale)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst, nil
}

// checkerboard generates a test raster with visible structure at every
// zoom level.
func checkerboard(w, h, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			if (x/cell+y/cell)%2 == 0 {
				img.Pix[i+0] = 0xd0
				img.Pix[i+1] = 0xd0
				img.Pix[i+2] = 0xd8
			} else {
				img.Pix[i+0] = 0x30
				img.Pix[i+1] = 0x60
				img.Pix[i+2] = 0x90
			}
			img.Pix[i+3] = 0xff
		}
	}
	return img
}

func uploadTexture(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return tex
}
