components {
  id: "script"
  component: "/camera/camera_acquire_input_focus.script"
}

embedded_components {
  id: "camera"
  type: "camera"
  data: "aspect_ratio: 1.0\n"
  "fov: 0.0\n"
  "near_z: 0.0\n"
  "far_z: 0.0\n"
  ""
  position {
    x: 0.0
    y: 0.0
    z: 0.0
  }
  rotation {
    x: 0.0
    y: 0.0
    z: 0.0
    w: 1.0
  }
}
