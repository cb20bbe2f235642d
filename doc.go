// Package dnd is a pointer-driven drag-and-drop and list-reordering engine
// for frame-driven user interfaces such as [Ebitengine] games and terminal
// UIs.
//
// The engine does not draw anything. The host renders its own elements and
// describes each one to the engine as an [ElementRef] (something with
// on-screen bounds). The engine tracks a single active drag, a single hover
// target, and turns a release into either a transfer between containers or
// a new order inside a sortable collection.
//
// # Quick start
//
//	engine := dnd.NewEngine()
//
//	list := dnd.NewDroppableSortable(engine, "todo", listElement,
//		dnd.GroupConfig[Task]{
//			Items:       tasks,
//			OnReordered: func(next []Task) { tasks = next },
//			SetPosition: func(t *Task, pos int) { t.Position = pos },
//		},
//		func(drag dnd.ActiveDrag) { /* item arrived from elsewhere */ })
//
//	for _, t := range tasks {
//		list.Group.NewDraggable(t.ID, taskElement(t))
//	}
//
// and once per frame, from your ebiten.Game Update:
//
//	engine.Update()
//
// # Building blocks
//
// [State] holds the active drag and the hover target. [Registry] maps each
// sortable group key to the one completion handler that runs when a drag of
// that group is released. [DragSource], [DropTarget] and [SortableItem] are
// the per-element bindings; [SortableGroup] ties a collection to a registry
// key. [ComputeTargetIndex] and [ApplyReorder] are the pure reorder math.
//
// # Testing without a window
//
// Pass WithPointerReader(nil) and drive input with [Engine.InjectDrag] and
// friends, or attach a YAML gesture script with [LoadGestureScript] and
// [Engine.SetScriptRunner]. Each Update consumes one queued pointer sample.
//
// The engine is single-threaded: every operation runs on the goroutine that
// calls [Engine.Update] or [Engine.FeedPointer].
//
// [Ebitengine]: https://ebitengine.org
package dnd
