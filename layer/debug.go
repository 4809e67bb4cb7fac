package layer

import (
	"go.uber.org/zap"

	"github.com/wippyai/vk-validation/diag"
	"github.com/wippyai/vk-validation/vk"
)

// CreateDebugReportCallbackEXT validates the create info and, once the next
// handler accepts it, installs the callback on the session.
func (l *Layer) CreateDebugReportCallbackEXT(instance vk.Instance, info *vk.DebugReportCallbackCreateInfoEXT,
	callback *vk.DebugReportCallbackEXT) vk.Result {
	const op = "vkCreateDebugReportCallbackEXT"
	ctx := l.sessionContext(op, instance.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: instance,
		Params: func(c *Checker) {
			c.Extension(nil, vk.EXTDebugReportExtensionName)
			c.Required(root("pCallback"), callback != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeDebugReportCallbackCreateInfoEXT)
			c.Chain(p, info.Next)
			checkFlags(c, p.dot("flags"), info.Flags, false)
			c.Required(p.dot("pfnCallback"), info.Callback != nil)
		},
		Track: func(r vk.Result) {
			if r != vk.Success {
				return
			}
			ctx.Session.Callbacks.Register(*callback, diag.Callback{
				Flags:    info.Flags,
				Fn:       info.Callback,
				UserData: info.UserData,
			})
			l.log.Debug("debug report callback installed",
				zap.String("op", op),
				zap.Uint64("callback", uint64(*callback)),
				zap.Stringer("flags", info.Flags))
		},
	}, func() vk.Result {
		return l.next.CreateDebugReportCallbackEXT(instance, info, callback)
	})
}

// DestroyDebugReportCallbackEXT removes a callback from the session.
func (l *Layer) DestroyDebugReportCallbackEXT(instance vk.Instance, callback vk.DebugReportCallbackEXT) vk.Result {
	const op = "vkDestroyDebugReportCallbackEXT"
	ctx := l.sessionContext(op, instance.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: instance,
		Params: func(c *Checker) {
			c.Extension(nil, vk.EXTDebugReportExtensionName)
		},
		Track: func(vk.Result) {
			if callback != 0 {
				ctx.Session.Callbacks.Unregister(callback)
			}
		},
	}, func() vk.Result {
		return l.next.DestroyDebugReportCallbackEXT(instance, callback)
	})
}

// DebugReportMessageEXT validates an application-injected message.
func (l *Layer) DebugReportMessageEXT(instance vk.Instance, flags vk.DebugReportFlagsEXT, objectType vk.DebugReportObjectTypeEXT,
	object uint64, location uint64, messageCode int32, layerPrefix, message string) vk.Result {
	const op = "vkDebugReportMessageEXT"
	ctx := l.sessionContext(op, instance.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: instance,
		Params: func(c *Checker) {
			c.Extension(nil, vk.EXTDebugReportExtensionName)
			checkFlags(c, root("flags"), flags, true)
			c.Enum(root("objectType"), objectType)
			c.String(root("pLayerPrefix"), layerPrefix)
			c.String(root("pMessage"), message)
		},
	}, func() vk.Result {
		return l.next.DebugReportMessageEXT(instance, flags, objectType, object, location, messageCode, layerPrefix, message)
	})
}
