components {
  id: "script"
  component: "/material/attributes_dynamic_go_set_get_sparse.script"
}

embedded_components {
  id: "sprite"
  type: "sprite"
  data: "tile_set: \"/tile/flipbook.tilesource\"\n"
  "default_animation: \"anim\"\n"
  "material: \"/material/attributes_dynamic_go_set_get_sparse.material\"\n"
  "blend_mode: BLEND_MODE_ALPHA\n"
}
